package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	boMocks "agenda/internal/domains/blackout/mocks"
	"agenda/internal/domains/blackout/model"
	"agenda/internal/domains/blackout/model/dto"
	"agenda/internal/domains/blackout/service"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/clock"
	gDto "agenda/shared/dto"
	gModel "agenda/shared/model"
)

const tenantID = "tenant-1"

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type deps struct {
	repo  *boMocks.MockBlackout
	cache *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Blackout, deps) {
	d := deps{
		repo:  boMocks.NewMockBlackout(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(d.repo, cfg, d.cache, clock.Fixed{Instant: now}, mocks.NewOtel())

	return svc, d
}

func holidayPeriod() model.BlackoutPeriod {
	return model.BlackoutPeriod{
		ID:        "blk-1",
		TenantID:  tenantID,
		StartDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Kind:      "HOLIDAY",
		Reason:    "public holiday",
	}
}

func TestBlackoutService_IsBlocked(t *testing.T) {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("covered date is blocked with the matched period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ListForDate(gomock.Any(), tenantID, date).
			Return([]model.BlackoutPeriod{holidayPeriod()}, nil)

		decision, err := svc.IsBlocked(context.Background(), tenantID, date, nil, nil)

		assert.NoError(t, err)
		assert.True(t, decision.Blocked)

		if assert.NotNil(t, decision.Period) {
			assert.Equal(t, "blk-1", decision.Period.ID)
		}
	})

	t.Run("partial-day period spares other times", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		period := holidayPeriod()
		start := gModel.TimeOfDay(12 * 60)
		end := gModel.TimeOfDay(14 * 60)
		period.StartTime = &start
		period.EndTime = &end

		d.repo.EXPECT().
			ListForDate(gomock.Any(), tenantID, date).
			Return([]model.BlackoutPeriod{period}, nil)

		morning := gModel.TimeOfDay(9 * 60)

		decision, err := svc.IsBlocked(context.Background(), tenantID, date, &morning, nil)

		assert.NoError(t, err)
		assert.False(t, decision.Blocked)
	})

	t.Run("no periods means open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ListForDate(gomock.Any(), tenantID, date).
			Return(nil, nil)

		decision, err := svc.IsBlocked(context.Background(), tenantID, date, nil, nil)

		assert.NoError(t, err)
		assert.False(t, decision.Blocked)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ListForDate(gomock.Any(), tenantID, date).
			Return(nil, errors.New("connection refused"))

		_, err := svc.IsBlocked(context.Background(), tenantID, date, nil, nil)

		assert.Error(t, err)
	})
}

func TestBlackoutService_Create(t *testing.T) {
	req := dto.CreateBlackoutRequest{
		StartDate: "2025-03-12",
		EndDate:   "2025-03-14",
		Kind:      "VACATION",
		Reason:    "spring break",
	}

	t.Run("creates a tenant-wide period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, period model.BlackoutPeriod) error {
				assert.Equal(t, tenantID, period.TenantID)
				assert.Nil(t, period.StaffID)
				assert.Nil(t, period.StartTime)
				assert.Equal(t, "VACATION", period.Kind)
				assert.NotEmpty(t, period.ID)

				return nil
			})

		d.cache.EXPECT().
			Clear(gomock.Any(), "blackouts:tenant:tenant-1*").
			Return(nil)

		res, err := svc.Create(context.Background(), tenantID, req)

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-12", res.StartDate)
		assert.Equal(t, "2025-03-14", res.EndDate)
	})

	t.Run("creates a partial-day staff period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		staff := "staff-1"
		start := "13:00"
		end := "15:00"

		partial := req
		partial.StaffID = &staff
		partial.StartTime = &start
		partial.EndTime = &end

		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, period model.BlackoutPeriod) error {
				if assert.NotNil(t, period.StartTime) {
					assert.Equal(t, gModel.TimeOfDay(13*60), *period.StartTime)
				}

				if assert.NotNil(t, period.StaffID) {
					assert.Equal(t, staff, *period.StaffID)
				}

				return nil
			})

		d.cache.EXPECT().
			Clear(gomock.Any(), "blackouts:tenant:tenant-1*").
			Return(nil)

		_, err := svc.Create(context.Background(), tenantID, partial)

		assert.NoError(t, err)
	})

	t.Run("inverted date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		bad := req
		bad.StartDate = "2025-03-14"
		bad.EndDate = "2025-03-12"

		_, err := svc.Create(context.Background(), tenantID, bad)

		assert.Error(t, err)
	})

	t.Run("inverted time range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		start := "15:00"
		end := "13:00"

		bad := req
		bad.StartTime = &start
		bad.EndTime = &end

		_, err := svc.Create(context.Background(), tenantID, bad)

		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		bad := req
		bad.StartDate = "12-03-2025"

		_, err := svc.Create(context.Background(), tenantID, bad)

		assert.Error(t, err)
	})
}

func TestBlackoutService_List(t *testing.T) {
	t.Run("cache miss loads and caches the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		d.repo.EXPECT().
			ListForTenant(gomock.Any(), tenantID, gomock.Any()).
			Return([]model.BlackoutPeriod{holidayPeriod()}, nil)

		d.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).
			Return(nil)

		res, err := svc.List(context.Background(), tenantID, gDto.QueryParams{})

		assert.NoError(t, err)

		if assert.Len(t, res.Items, 1) {
			assert.Equal(t, "blk-1", res.Items[0].ID)
			assert.Equal(t, "HOLIDAY", res.Items[0].Kind)
		}
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		cached := dto.ListBlackoutsResponse{Items: []dto.BlackoutResponse{{ID: "blk-1", Kind: "HOLIDAY"}}}

		d.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.ListBlackoutsResponse) = cached

				return nil
			})

		res, err := svc.List(context.Background(), tenantID, gDto.QueryParams{})

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})
}

func TestBlackoutService_Delete(t *testing.T) {
	t.Run("deletes a future period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "blk-1").
			Return(holidayPeriod(), nil)

		d.repo.EXPECT().
			Delete(gomock.Any(), tenantID, "blk-1").
			Return(nil)

		d.cache.EXPECT().
			Clear(gomock.Any(), "blackouts:tenant:tenant-1*").
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), tenantID, "blk-1"))
	})

	t.Run("refuses a period that already started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		period := holidayPeriod()
		period.StartDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "blk-1").
			Return(period, nil)

		assert.Error(t, svc.Delete(context.Background(), tenantID, "blk-1"))
	})

	t.Run("unknown period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "missing").
			Return(model.BlackoutPeriod{}, nil)

		assert.Error(t, svc.Delete(context.Background(), tenantID, "missing"))
	})
}
