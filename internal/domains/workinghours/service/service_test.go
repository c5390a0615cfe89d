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
	whMocks "agenda/internal/domains/workinghours/mocks"
	"agenda/internal/domains/workinghours/model"
	"agenda/internal/domains/workinghours/model/dto"
	"agenda/internal/domains/workinghours/service"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/clock"
	gModel "agenda/shared/model"
)

const (
	tenantID = "tenant-1"
	staffID  = "staff-1"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type deps struct {
	repo  *whMocks.MockWorkingHours
	cache *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.WorkingHours, deps) {
	d := deps{
		repo:  whMocks.NewMockWorkingHours(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(d.repo, cfg, d.cache, clock.Fixed{Instant: now}, mocks.NewOtel())

	return svc, d
}

func TestWorkingHoursService_Upsert(t *testing.T) {
	req := dto.UpsertWorkingHoursRequest{
		StaffID:             staffID,
		Weekday:             1,
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 30,
		Active:              true,
	}

	t.Run("stores the schedule and invalidates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row model.WorkingHours) error {
				assert.Equal(t, tenantID, row.TenantID)
				assert.Equal(t, 1, row.Weekday)
				assert.Equal(t, gModel.TimeOfDay(9*60), row.StartTime)
				assert.Equal(t, gModel.TimeOfDay(17*60), row.EndTime)
				assert.Equal(t, 30, row.SlotDurationMinutes)
				assert.True(t, row.Active)
				assert.NotEmpty(t, row.ID)

				return nil
			})

		d.cache.EXPECT().
			Delete(gomock.Any(), "workinghours:staff:tenant-1:staff-1").
			Return(nil)

		assert.NoError(t, svc.Upsert(context.Background(), tenantID, req))
	})

	t.Run("inverted time range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		bad := req
		bad.StartTime = "17:00"
		bad.EndTime = "09:00"

		assert.Error(t, svc.Upsert(context.Background(), tenantID, bad))
	})

	t.Run("malformed time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		bad := req
		bad.StartTime = "25:00"

		assert.Error(t, svc.Upsert(context.Background(), tenantID, bad))
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		assert.Error(t, svc.Upsert(context.Background(), tenantID, req))
	})
}

func TestWorkingHoursService_List(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		cached := dto.ListWorkingHoursResponse{
			Items: []dto.WorkingHoursResponse{{StaffID: staffID, Weekday: 1, StartTime: "09:00", EndTime: "17:00"}},
		}

		d.cache.EXPECT().
			Get(gomock.Any(), "workinghours:staff:tenant-1:staff-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.ListWorkingHoursResponse) = cached

				return nil
			})

		res, err := svc.List(context.Background(), tenantID, staffID)

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("cache miss loads and caches the schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		d.repo.EXPECT().
			ListForStaff(gomock.Any(), tenantID, staffID).
			Return([]model.WorkingHours{
				{StaffID: staffID, Weekday: 1, StartTime: 9 * 60, EndTime: 17 * 60, SlotDurationMinutes: 30, Active: true},
				{StaffID: staffID, Weekday: 2, StartTime: 10 * 60, EndTime: 16 * 60, SlotDurationMinutes: 45, Active: false},
			}, nil)

		d.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).
			Return(nil)

		res, err := svc.List(context.Background(), tenantID, staffID)

		assert.NoError(t, err)

		if assert.Len(t, res.Items, 2) {
			assert.Equal(t, "09:00", res.Items[0].StartTime)
			assert.Equal(t, "17:00", res.Items[0].EndTime)
			assert.False(t, res.Items[1].Active)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		d.repo.EXPECT().
			ListForStaff(gomock.Any(), tenantID, staffID).
			Return(nil, errors.New("connection refused"))

		_, err := svc.List(context.Background(), tenantID, staffID)

		assert.Error(t, err)
	})
}

func TestWorkingHoursService_SetActive(t *testing.T) {
	t.Run("toggles the weekday and invalidates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			SetActive(gomock.Any(), tenantID, staffID, 3, false, gomock.Any()).
			Return(nil)

		d.cache.EXPECT().
			Delete(gomock.Any(), "workinghours:staff:tenant-1:staff-1").
			Return(nil)

		assert.NoError(t, svc.SetActive(context.Background(), tenantID, staffID, 3, false))
	})

	t.Run("weekday out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		assert.Error(t, svc.SetActive(context.Background(), tenantID, staffID, 7, true))
	})
}

func TestWorkingHoursService_GetForWeekday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newService(ctrl)

	row := model.WorkingHours{StaffID: staffID, Weekday: 1, StartTime: 9 * 60, EndTime: 17 * 60, Active: true}

	d.repo.EXPECT().
		GetForWeekday(gomock.Any(), tenantID, staffID, 1).
		Return(row, nil)

	got, err := svc.GetForWeekday(context.Background(), tenantID, staffID, 1)

	assert.NoError(t, err)
	assert.Equal(t, row, got)
}
