package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/otel/mocks"
	obMocks "agenda/internal/domains/outbox/mocks"
	obModel "agenda/internal/domains/outbox/model"
	rsMocks "agenda/internal/domains/reservation/mocks"
	rsModel "agenda/internal/domains/reservation/model"
	wlMocks "agenda/internal/domains/waitlist/mocks"
	"agenda/internal/domains/waitlist/model"
	"agenda/internal/domains/waitlist/model/dto"
	"agenda/internal/domains/waitlist/service"
	"agenda/shared/clock"
	"agenda/shared/failure"
	gModel "agenda/shared/model"
)

const (
	tenantID    = "tenant-1"
	staffID     = "staff-1"
	serviceID   = "svc-1"
	clientEmail = "client@example.com"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type deps struct {
	repo         *wlMocks.MockWaitlist
	reservations *rsMocks.MockReservationService
	outbox       *obMocks.MockOutbox
}

func newService(ctrl *gomock.Controller) (service.Waitlist, deps) {
	d := deps{
		repo:         wlMocks.NewMockWaitlist(ctrl),
		reservations: rsMocks.NewMockReservationService(ctrl),
		outbox:       obMocks.NewMockOutbox(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.WaitlistMaxOpenPerClient = 3
	cfg.Booking.WaitlistConfirmHours = 48
	cfg.Outbox.BatchSize = 20

	svc := service.New(d.repo, d.reservations, d.outbox, cfg, clock.Fixed{Instant: now}, mocks.NewOtel())

	return svc, d
}

func freedSlot() gModel.TimeSlot {
	return gModel.TimeSlot{
		Date:  time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Start: 10 * 60,
		End:   11 * 60,
	}
}

func activeEntry() model.WaitlistEntry {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	return model.WaitlistEntry{
		ID:             "entry-1",
		TenantID:       tenantID,
		StaffID:        staffID,
		ServiceID:      serviceID,
		ClientEmail:    clientEmail,
		PreferredDate:  &date,
		PreferredStart: 9 * 60,
		PreferredEnd:   15 * 60,
		State:          model.StateActive,
		Priority:       7,
	}
}

func notifiedEntry() model.WaitlistEntry {
	slot := freedSlot()
	token := "tok-1"
	expiresAt := now.Add(time.Hour)

	entry := activeEntry()
	entry.State = model.StateNotified
	entry.ConfirmationToken = &token
	entry.TokenExpiresAt = &expiresAt
	entry.OfferedDate = &slot.Date
	entry.OfferedStart = &slot.Start
	entry.OfferedEnd = &slot.End

	return entry
}

// expectNotify wires the outbox for one best-effort notification and asserts
// the enqueued record carries the given template.
func expectNotify(t *testing.T, d deps, template string) {
	d.outbox.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})

	d.outbox.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, records []obModel.Record) error {
			if assert.Len(t, records, 1) {
				assert.Equal(t, obModel.KindNotify, records[0].Kind)
				assert.Equal(t, tenantID, records[0].TenantID)

				var payload obModel.NotifyPayload
				assert.NoError(t, json.Unmarshal(records[0].Payload, &payload))
				assert.Equal(t, template, payload.Template)
				assert.Equal(t, clientEmail, payload.Recipient)
			}

			return nil
		})
}

func TestWaitlistService_Join(t *testing.T) {
	date := "2025-03-12"
	req := dto.JoinWaitlistRequest{
		StaffID:        staffID,
		ServiceID:      serviceID,
		ClientEmail:    clientEmail,
		PreferredDate:  &date,
		PreferredStart: "09:00",
		PreferredEnd:   "15:00",
	}

	t.Run("successful join returns queue position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			CountOpenForClient(gomock.Any(), tenantID, clientEmail).
			Return(1, nil)

		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.WaitlistEntry) (model.WaitlistEntry, error) {
				assert.Equal(t, model.StateActive, entry.State)
				assert.Equal(t, gModel.TimeOfDay(9*60), entry.PreferredStart)
				assert.NotEmpty(t, entry.ID)

				entry.Priority = 12

				return entry, nil
			})

		d.repo.EXPECT().
			QueuePosition(gomock.Any(), gomock.Any()).
			Return(4, nil)

		res, err := svc.Join(context.Background(), tenantID, req)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StateActive), res.State)
		assert.Equal(t, 4, res.QueuePosition)
		assert.Equal(t, "09:00", res.PreferredStart)
	})

	t.Run("per-client limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			CountOpenForClient(gomock.Any(), tenantID, clientEmail).
			Return(3, nil)

		_, err := svc.Join(context.Background(), tenantID, req)

		assert.Error(t, err)
		assert.Equal(t, failure.GetCode(failure.Conflict("")), failure.GetCode(err))
	})

	t.Run("invalid time window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newService(ctrl)

		bad := req
		bad.PreferredEnd = "08:00"

		_, err := svc.Join(context.Background(), tenantID, bad)

		assert.Error(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			CountOpenForClient(gomock.Any(), tenantID, clientEmail).
			Return(0, errors.New("connection refused"))

		_, err := svc.Join(context.Background(), tenantID, req)

		assert.Error(t, err)
	})
}

func TestWaitlistService_OnSlotFreed(t *testing.T) {
	payload := obModel.WaitlistPromotePayload{
		TenantID:  tenantID,
		StaffID:   staffID,
		ServiceID: serviceID,
		Slot:      freedSlot(),
	}

	t.Run("promotes the oldest matching entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			FindCandidate(gomock.Any(), tenantID, staffID, serviceID, payload.Slot).
			Return(activeEntry(), nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateActive).
			DoAndReturn(func(_ context.Context, entry model.WaitlistEntry, _ model.State) (bool, error) {
				assert.Equal(t, model.StateNotified, entry.State)
				assert.NotNil(t, entry.ConfirmationToken)

				if assert.NotNil(t, entry.TokenExpiresAt) {
					assert.Equal(t, now.Add(48*time.Hour), *entry.TokenExpiresAt)
				}

				assert.Equal(t, payload.Slot, entry.OfferedSlot())

				return true, nil
			})

		expectNotify(t, d, model.TemplateWaitlistNotified)

		assert.NoError(t, svc.OnSlotFreed(context.Background(), payload))
	})

	t.Run("no matching entry is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			FindCandidate(gomock.Any(), tenantID, staffID, serviceID, payload.Slot).
			Return(model.WaitlistEntry{}, nil)

		assert.NoError(t, svc.OnSlotFreed(context.Background(), payload))
	})

	t.Run("concurrent move skips the promotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			FindCandidate(gomock.Any(), tenantID, staffID, serviceID, payload.Slot).
			Return(activeEntry(), nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateActive).
			Return(false, nil)

		assert.NoError(t, svc.OnSlotFreed(context.Background(), payload))
	})
}

func TestWaitlistService_Convert(t *testing.T) {
	t.Run("successful conversion books the offered slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)
		entry := notifiedEntry()

		d.repo.EXPECT().
			FindByToken(gomock.Any(), "tok-1").
			Return(entry, nil)

		d.reservations.EXPECT().
			BookEntity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res rsModel.Reservation) (rsModel.Reservation, error) {
				assert.Equal(t, tenantID, res.TenantID)
				assert.Equal(t, clientEmail, res.ClientEmail)
				assert.Equal(t, entry.OfferedSlot(), gModel.TimeSlot{Date: res.Date, Start: res.StartTime, End: res.EndTime})
				assert.Equal(t, rsModel.StateBooked, res.State)

				res.ID = "res-9"

				return res, nil
			})

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateNotified).
			DoAndReturn(func(_ context.Context, next model.WaitlistEntry, _ model.State) (bool, error) {
				assert.Equal(t, model.StateConverted, next.State)

				if assert.NotNil(t, next.ReservationID) {
					assert.Equal(t, "res-9", *next.ReservationID)
				}

				return true, nil
			})

		expectNotify(t, d, model.TemplateWaitlistConverted)

		res, err := svc.Convert(context.Background(), "tok-1")

		assert.NoError(t, err)
		assert.Equal(t, string(model.StateConverted), res.State)

		if assert.NotNil(t, res.ReservationID) {
			assert.Equal(t, "res-9", *res.ReservationID)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			FindByToken(gomock.Any(), "nope").
			Return(model.WaitlistEntry{}, nil)

		_, err := svc.Convert(context.Background(), "nope")

		assert.ErrorIs(t, err, failure.InvalidToken)
	})

	t.Run("entry no longer notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		entry := notifiedEntry()
		entry.State = model.StateExpired

		d.repo.EXPECT().
			FindByToken(gomock.Any(), "tok-1").
			Return(entry, nil)

		_, err := svc.Convert(context.Background(), "tok-1")

		assert.ErrorIs(t, err, failure.EntryNotAvailable)
	})

	t.Run("expired token expires the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		entry := notifiedEntry()
		expiredAt := now.Add(-time.Minute)
		entry.TokenExpiresAt = &expiredAt

		d.repo.EXPECT().
			FindByToken(gomock.Any(), "tok-1").
			Return(entry, nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateNotified).
			DoAndReturn(func(_ context.Context, next model.WaitlistEntry, _ model.State) (bool, error) {
				assert.Equal(t, model.StateExpired, next.State)

				return true, nil
			})

		_, err := svc.Convert(context.Background(), "tok-1")

		assert.ErrorIs(t, err, failure.TokenExpired)
	})

	t.Run("slot taken in the meantime expires the entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			FindByToken(gomock.Any(), "tok-1").
			Return(notifiedEntry(), nil)

		d.reservations.EXPECT().
			BookEntity(gomock.Any(), gomock.Any()).
			Return(rsModel.Reservation{}, failure.SlotUnavailable)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateNotified).
			Return(true, nil)

		_, err := svc.Convert(context.Background(), "tok-1")

		assert.ErrorIs(t, err, failure.SlotNoLongerAvailable)
	})

	t.Run("booking failure other than a conflict propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			FindByToken(gomock.Any(), "tok-1").
			Return(notifiedEntry(), nil)

		bookErr := errors.New("insert failed")

		d.reservations.EXPECT().
			BookEntity(gomock.Any(), gomock.Any()).
			Return(rsModel.Reservation{}, bookErr)

		_, err := svc.Convert(context.Background(), "tok-1")

		assert.ErrorIs(t, err, bookErr)
	})
}

func TestWaitlistService_Cancel(t *testing.T) {
	owner := rsModel.Actor{Email: clientEmail}

	t.Run("owner withdraws an active entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ResolveByID(gomock.Any(), tenantID, "entry-1").
			Return(activeEntry(), nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateActive).
			DoAndReturn(func(_ context.Context, next model.WaitlistEntry, _ model.State) (bool, error) {
				assert.Equal(t, model.StateCancelled, next.State)

				return true, nil
			})

		expectNotify(t, d, model.TemplateWaitlistCancelled)

		assert.NoError(t, svc.Cancel(context.Background(), tenantID, "entry-1", owner))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ResolveByID(gomock.Any(), tenantID, "entry-1").
			Return(activeEntry(), nil)

		err := svc.Cancel(context.Background(), tenantID, "entry-1", rsModel.Actor{Email: "other@example.com"})

		assert.Error(t, err)
		assert.Equal(t, failure.GetCode(failure.Forbidden("")), failure.GetCode(err))
	})

	t.Run("unknown entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ResolveByID(gomock.Any(), tenantID, "missing").
			Return(model.WaitlistEntry{}, nil)

		err := svc.Cancel(context.Background(), tenantID, "missing", owner)

		assert.Error(t, err)
		assert.Equal(t, failure.GetCode(failure.NotFound(model.EntityName)), failure.GetCode(err))
	})

	t.Run("terminal entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		entry := activeEntry()
		entry.State = model.StateConverted

		d.repo.EXPECT().
			ResolveByID(gomock.Any(), tenantID, "entry-1").
			Return(entry, nil)

		err := svc.Cancel(context.Background(), tenantID, "entry-1", rsModel.Actor{Admin: true})

		assert.ErrorIs(t, err, failure.AlreadyTerminal)
	})

	t.Run("concurrent move loses to the other writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ResolveByID(gomock.Any(), tenantID, "entry-1").
			Return(activeEntry(), nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateActive).
			Return(false, nil)

		err := svc.Cancel(context.Background(), tenantID, "entry-1", owner)

		assert.ErrorIs(t, err, failure.AlreadyTerminal)
	})
}

func TestWaitlistService_SweepExpired(t *testing.T) {
	t.Run("expires stale offers and re-offers free slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		stale := notifiedEntry()
		expiredAt := now.Add(-time.Hour)
		stale.TokenExpiresAt = &expiredAt

		d.repo.EXPECT().
			ListStaleNotified(gomock.Any(), now, 20).
			Return([]model.WaitlistEntry{stale}, nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateNotified).
			DoAndReturn(func(_ context.Context, next model.WaitlistEntry, _ model.State) (bool, error) {
				assert.Equal(t, model.StateExpired, next.State)

				return true, nil
			})

		d.reservations.EXPECT().
			SlotTaken(gomock.Any(), tenantID, staffID, stale.OfferedSlot()).
			Return(false, nil)

		// The freed slot goes back through the promotion path.
		d.repo.EXPECT().
			FindCandidate(gomock.Any(), tenantID, staffID, serviceID, stale.OfferedSlot()).
			Return(model.WaitlistEntry{}, nil)

		expired, err := svc.SweepExpired(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, expired)
	})

	t.Run("slot already rebooked is not re-offered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		stale := notifiedEntry()

		d.repo.EXPECT().
			ListStaleNotified(gomock.Any(), now, 20).
			Return([]model.WaitlistEntry{stale}, nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateNotified).
			Return(true, nil)

		d.reservations.EXPECT().
			SlotTaken(gomock.Any(), tenantID, staffID, stale.OfferedSlot()).
			Return(true, nil)

		expired, err := svc.SweepExpired(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, expired)
	})

	t.Run("concurrent conversion is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, d := newService(ctrl)

		d.repo.EXPECT().
			ListStaleNotified(gomock.Any(), now, 20).
			Return([]model.WaitlistEntry{notifiedEntry()}, nil)

		d.repo.EXPECT().
			Transition(gomock.Any(), gomock.Any(), model.StateNotified).
			Return(false, nil)

		expired, err := svc.SweepExpired(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, expired)
	})
}
