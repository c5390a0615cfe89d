package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/infras/otel/mocks"
	avMocks "agenda/internal/domains/availability/mocks"
	obModel "agenda/internal/domains/outbox/model"
	poMocks "agenda/internal/domains/policy/mocks"
	poModel "agenda/internal/domains/policy/model"
	rsMocks "agenda/internal/domains/reservation/mocks"
	"agenda/internal/domains/reservation/model"
	"agenda/internal/domains/reservation/model/dto"
	"agenda/internal/domains/reservation/repository"
	"agenda/internal/domains/reservation/service"
	trMocks "agenda/internal/domains/trust/mocks"
	"agenda/shared/clock"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
)

const (
	tenantID    = "tenant-1"
	staffID     = "staff-1"
	clientEmail = "client@example.com"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type deps struct {
	repo         *rsMocks.MockReservation
	availability *avMocks.MockAvailabilityService
	trust        *trMocks.MockTrustService
	policies     *poMocks.MockPolicyService
}

func newService(ctrl *gomock.Controller) (service.Reservation, deps) {
	d := deps{
		repo:         rsMocks.NewMockReservation(ctrl),
		availability: avMocks.NewMockAvailabilityService(ctrl),
		trust:        trMocks.NewMockTrustService(ctrl),
		policies:     poMocks.NewMockPolicyService(ctrl),
	}

	svc := service.New(d.repo, d.availability, d.trust, d.policies, clock.Fixed{Instant: now}, mocks.NewOtel())

	return svc, d
}

func bookedReservation() model.Reservation {
	return model.Reservation{
		ID:          "res-1",
		TenantID:    tenantID,
		StaffID:     staffID,
		ServiceID:   "svc-1",
		ClientEmail: clientEmail,
		Date:        time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   10 * 60,
		EndTime:     11 * 60,
		State:       model.StateBooked,
		CancelToken: "token-1",
	}
}

func lenientPolicy() poModel.CancellationPolicy {
	return poModel.CancellationPolicy{
		TenantID:       tenantID,
		Enabled:        true,
		MinNoticeHours: 24,
		MaxPerMonth:    3,
		BlockOnExceed:  true,
		BlockDays:      30,
	}
}

func TestReservationService_Book(t *testing.T) {
	req := dto.CreateReservationRequest{
		StaffID:     staffID,
		ServiceID:   "svc-1",
		ClientEmail: clientEmail,
		Date:        "2025-03-12",
		StartTime:   "10:00",
		DurationMin: 60,
	}

	t.Run("successful booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.trust.EXPECT().
			CanBook(gomock.Any(), tenantID, clientEmail).
			Return(nil)

		d.availability.EXPECT().
			SlotAvailable(gomock.Any(), tenantID, staffID, gomock.Any()).
			Return(true, nil)

		d.repo.EXPECT().
			InsertBooked(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res model.Reservation, records []obModel.Record) error {
				assert.Equal(t, model.StateBooked, res.State)
				assert.NotEmpty(t, res.ID)
				assert.NotEmpty(t, res.CancelToken)

				if assert.Len(t, records, 1) {
					assert.Equal(t, obModel.KindNotify, records[0].Kind)
				}

				return nil
			})

		res, err := svc.Book(context.Background(), tenantID, req)

		assert.NoError(t, err)
		assert.Equal(t, "10:00", res.StartTime)
		assert.Equal(t, "11:00", res.EndTime)
		assert.NotEmpty(t, res.CancelToken)
	})

	t.Run("blocked client cannot book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.trust.EXPECT().
			CanBook(gomock.Any(), tenantID, clientEmail).
			Return(failure.ClientBlocked("2025-04-01T00:00:00Z", "too many late cancellations"))

		_, err := svc.Book(context.Background(), tenantID, req)

		assert.Error(t, err)
		assert.Equal(t, failure.GetCode(failure.ClientBlocked("", "")), failure.GetCode(err))
	})

	t.Run("slot not offered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.trust.EXPECT().
			CanBook(gomock.Any(), tenantID, clientEmail).
			Return(nil)

		d.availability.EXPECT().
			SlotAvailable(gomock.Any(), tenantID, staffID, gomock.Any()).
			Return(false, nil)

		_, err := svc.Book(context.Background(), tenantID, req)

		assert.ErrorIs(t, err, failure.SlotUnavailable)
	})

	t.Run("transactional overlap check loses the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.trust.EXPECT().
			CanBook(gomock.Any(), tenantID, clientEmail).
			Return(nil)

		d.availability.EXPECT().
			SlotAvailable(gomock.Any(), tenantID, staffID, gomock.Any()).
			Return(true, nil)

		d.repo.EXPECT().
			InsertBooked(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ErrSlotTaken)

		_, err := svc.Book(context.Background(), tenantID, req)

		assert.ErrorIs(t, err, failure.SlotUnavailable)
	})

	t.Run("malformed slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		bad := req
		bad.StartTime = "25:00"

		_, err := svc.Book(context.Background(), tenantID, bad)

		assert.Error(t, err)
	})
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("owner cancels with enough notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(bookedReservation(), nil)

		d.policies.EXPECT().
			Get(gomock.Any(), tenantID).
			Return(lenientPolicy(), nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateBooked, gomock.Any()).
			DoAndReturn(func(_ context.Context, next model.Reservation, _ model.State, records []obModel.Record) error {
				assert.Equal(t, model.StateCancelled, next.State)

				kinds := make([]string, 0, len(records))
				for _, record := range records {
					kinds = append(kinds, record.Kind)
				}

				assert.Equal(t, []string{obModel.KindWaitlistPromote, obModel.KindNotify, obModel.KindTrustIncrement}, kinds)

				return nil
			})

		err := svc.Cancel(context.Background(), tenantID, "res-1", model.Actor{Email: clientEmail}, "changed my mind")

		assert.NoError(t, err)
	})

	t.Run("inside the notice window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		res := bookedReservation()
		res.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		res.StartTime = 18 * 60
		res.EndTime = 19 * 60

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(res, nil)

		d.policies.EXPECT().
			Get(gomock.Any(), tenantID).
			Return(lenientPolicy(), nil)

		err := svc.Cancel(context.Background(), tenantID, "res-1", model.Actor{Email: clientEmail}, "")

		assert.Error(t, err)
		assert.Equal(t, failure.GetCode(failure.CancellationWindowViolation(24, 6)), failure.GetCode(err))
	})

	t.Run("admin bypasses the notice window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		res := bookedReservation()
		res.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		res.StartTime = 18 * 60
		res.EndTime = 19 * 60

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(res, nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateBooked, gomock.Any()).
			DoAndReturn(func(_ context.Context, next model.Reservation, _ model.State, records []obModel.Record) error {
				kinds := make([]string, 0, len(records))
				for _, record := range records {
					kinds = append(kinds, record.Kind)
				}

				// No trust increment for admin cancellations.
				assert.Equal(t, []string{obModel.KindWaitlistPromote, obModel.KindNotify}, kinds)

				return nil
			})

		err := svc.Cancel(context.Background(), tenantID, "res-1", model.Actor{Email: "admin@example.com", Admin: true}, "")

		assert.NoError(t, err)
	})

	t.Run("stranger may not cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(bookedReservation(), nil)

		err := svc.Cancel(context.Background(), tenantID, "res-1", model.Actor{Email: "stranger@example.com"}, "")

		assert.Error(t, err)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "missing").
			Return(model.Reservation{}, nil)

		err := svc.Cancel(context.Background(), tenantID, "missing", model.Actor{Admin: true}, "")

		assert.Error(t, err)
	})

	t.Run("concurrent state change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(bookedReservation(), nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateBooked, gomock.Any()).
			Return(repository.ErrStaleState)

		err := svc.Cancel(context.Background(), tenantID, "res-1", model.Actor{Admin: true}, "")

		assert.Error(t, err)
	})
}

func TestReservationService_CancelByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, d := newService(ctrl)

	d.repo.EXPECT().
		GetByCancelToken(gomock.Any(), "token-1").
		Return(bookedReservation(), nil)

	d.policies.EXPECT().
		Get(gomock.Any(), tenantID).
		Return(lenientPolicy(), nil)

	d.repo.EXPECT().
		Transition(gomock.Any(), gomock.Any(), model.StateBooked, gomock.Any()).
		Return(nil)

	err := svc.CancelByToken(context.Background(), "token-1", "")

	assert.NoError(t, err)

	t.Run("unknown token", func(t *testing.T) {
		d.repo.EXPECT().
			GetByCancelToken(gomock.Any(), "bogus").
			Return(model.Reservation{}, nil)

		err := svc.CancelByToken(context.Background(), "bogus", "")

		assert.Error(t, err)
	})
}

func TestReservationService_Reschedule(t *testing.T) {
	req := dto.RescheduleReservationRequest{
		Date:        "2025-03-14",
		StartTime:   "15:00",
		DurationMin: 60,
	}

	t.Run("successful move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(bookedReservation(), nil)

		d.repo.EXPECT().
			UpdateSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, next model.Reservation, _ []obModel.Record) error {
				assert.Equal(t, "15:00", next.StartTime.String())
				assert.Equal(t, "16:00", next.EndTime.String())

				return nil
			})

		res, err := svc.Reschedule(context.Background(), tenantID, "res-1", model.Actor{Email: clientEmail}, req)

		assert.NoError(t, err)
		assert.Equal(t, "15:00", res.StartTime)
	})

	t.Run("target slot taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(bookedReservation(), nil)

		d.repo.EXPECT().
			UpdateSlot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.ErrSlotTaken)

		_, err := svc.Reschedule(context.Background(), tenantID, "res-1", model.Actor{Email: clientEmail}, req)

		assert.ErrorIs(t, err, failure.SlotUnavailable)
	})
}

func TestReservationService_List(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	fieldValues := func(filter gDto.FilterGroup, field string) []gDto.Filter {
		matched := make([]gDto.Filter, 0, len(filter.Filters))
		for _, raw := range filter.Filters {
			f, ok := raw.(gDto.Filter)
			if ok && f.Field == field {
				matched = append(matched, f)
			}
		}

		return matched
	}

	t.Run("cancelled rows are hidden by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
				tenant := fieldValues(filter, model.FieldTenantID)
				if assert.Len(t, tenant, 1) {
					assert.Equal(t, tenantID, tenant[0].Value)
				}

				state := fieldValues(filter, model.FieldState)
				if assert.Len(t, state, 1) {
					assert.Equal(t, gDto.FilterOperatorNotEq, state[0].Operator)
					assert.Equal(t, string(model.StateCancelled), state[0].Value)
				}

				return []model.Reservation{bookedReservation()}, nil
			})

		d.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(11, nil)

		res, err := svc.List(context.Background(), tenantID, params, dto.ListReservationsFilter{})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, "10:00", res.Items[0].StartTime)
		assert.Equal(t, 11, res.Total)
		assert.Equal(t, 2, res.TotalPages)
	})

	t.Run("explicit state filter wins over the default exclusion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
				staff := fieldValues(filter, model.FieldStaffID)
				if assert.Len(t, staff, 1) {
					assert.Equal(t, staffID, staff[0].Value)
				}

				state := fieldValues(filter, model.FieldState)
				if assert.Len(t, state, 1) {
					assert.Equal(t, gDto.FilterOperatorEq, state[0].Operator)
					assert.Equal(t, string(model.StateCancelled), state[0].Value)
				}

				return nil, nil
			})

		d.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		listFilter := dto.ListReservationsFilter{StaffID: staffID, State: string(model.StateCancelled)}

		res, err := svc.List(context.Background(), tenantID, params, listFilter)

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("include_cancelled drops the state filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		include := true

		d.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
				assert.Empty(t, fieldValues(filter, model.FieldState))

				client := fieldValues(filter, model.FieldClientEmail)
				if assert.Len(t, client, 1) {
					assert.Equal(t, clientEmail, client[0].Value)
				}

				return nil, nil
			})

		d.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		listFilter := dto.ListReservationsFilter{ClientEmail: clientEmail, IncludeCancelled: &include}

		_, err := svc.List(context.Background(), tenantID, params, listFilter)

		assert.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := svc.List(context.Background(), tenantID, params, dto.ListReservationsFilter{})

		assert.Error(t, err)
	})
}

func TestReservationService_Complete(t *testing.T) {
	t.Run("after the appointment ended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		res := bookedReservation()
		res.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		res.StartTime = 9 * 60
		res.EndTime = 10 * 60

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(res, nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateBooked, nil).
			DoAndReturn(func(_ context.Context, next model.Reservation, _ model.State, _ []obModel.Record) error {
				assert.Equal(t, model.StateCompleted, next.State)

				return nil
			})

		err := svc.Complete(context.Background(), tenantID, "res-1", model.Actor{Admin: true, Email: "admin@example.com"})

		assert.NoError(t, err)
	})

	t.Run("before the appointment ended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			Get(gomock.Any(), tenantID, "res-1").
			Return(bookedReservation(), nil)

		err := svc.Complete(context.Background(), tenantID, "res-1", model.Actor{Admin: true})

		assert.Error(t, err)
	})
}
