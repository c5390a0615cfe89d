package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agenda/config"
	"agenda/infras/kafka"
	kfMocks "agenda/infras/kafka/mocks"
	"agenda/infras/otel/mocks"
	obMocks "agenda/internal/domains/outbox/mocks"
	"agenda/internal/domains/outbox/model"
	"agenda/internal/domains/outbox/worker"
	poMocks "agenda/internal/domains/policy/mocks"
	poModel "agenda/internal/domains/policy/model"
	trMocks "agenda/internal/domains/trust/mocks"
	wlMocks "agenda/internal/domains/waitlist/mocks"
	ntMocks "agenda/internal/notifier/mocks"
	"agenda/shared/clock"
	gModel "agenda/shared/model"
)

const (
	tenantID    = "tenant-1"
	clientEmail = "client@example.com"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type deps struct {
	outbox   *obMocks.MockOutbox
	trust    *trMocks.MockTrustService
	policies *poMocks.MockPolicyService
	waitlist *wlMocks.MockWaitlistService
	sender   *ntMocks.MockSender
	events   *kfMocks.MockClient
}

func newWorker(ctrl *gomock.Controller, publishEvents bool) (*worker.Worker, deps) {
	d := deps{
		outbox:   obMocks.NewMockOutbox(ctrl),
		trust:    trMocks.NewMockTrustService(ctrl),
		policies: poMocks.NewMockPolicyService(ctrl),
		waitlist: wlMocks.NewMockWaitlistService(ctrl),
		sender:   ntMocks.NewMockSender(ctrl),
		events:   kfMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Outbox.BatchSize = 20
	cfg.Outbox.MaxAttempts = 5
	cfg.Outbox.RetryBackoffSeconds = 30
	cfg.Kafka.Enable = publishEvents
	cfg.Kafka.EventTopic = "agenda.events"

	w := worker.New(d.outbox, d.trust, d.policies, d.waitlist, d.sender, d.events, cfg, clock.Fixed{Instant: now}, mocks.NewOtel())

	return w, d
}

func record(t *testing.T, id int64, kind string, payload any, attempts int) model.Record {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return model.Record{
		ID:            id,
		TenantID:      tenantID,
		Kind:          kind,
		Payload:       raw,
		Attempts:      attempts,
		NextAttemptAt: now,
	}
}

// expectBatch wires WithinTx to run the batch callback and FetchDue to hand
// it the given records.
func expectBatch(d deps, records []model.Record) {
	d.outbox.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})

	d.outbox.EXPECT().
		FetchDue(gomock.Any(), gomock.Any(), now, 20).
		Return(records, nil)
}

func TestWorker_ProcessBatch(t *testing.T) {
	t.Run("dispatches a notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		payload := model.NotifyPayload{Channel: "email", Recipient: clientEmail, Template: "booking_confirmed"}
		expectBatch(d, []model.Record{record(t, 1, model.KindNotify, payload, 0)})

		d.sender.EXPECT().
			Send(gomock.Any(), payload).
			Return(nil)

		d.outbox.EXPECT().
			MarkProcessed(gomock.Any(), gomock.Any(), int64(1), now).
			Return(nil)

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("records a cancellation against the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		payload := model.TrustIncrementPayload{TenantID: tenantID, ClientEmail: clientEmail}
		expectBatch(d, []model.Record{record(t, 2, model.KindTrustIncrement, payload, 0)})

		policy := poModel.CancellationPolicy{TenantID: tenantID, Enabled: true, MaxPerMonth: 3}

		d.policies.EXPECT().
			Get(gomock.Any(), tenantID).
			Return(policy, nil)

		d.trust.EXPECT().
			RecordCancellation(gomock.Any(), tenantID, clientEmail, policy).
			Return(false, 2, nil)

		d.outbox.EXPECT().
			MarkProcessed(gomock.Any(), gomock.Any(), int64(2), now).
			Return(nil)

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("re-offers a freed slot to the waitlist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		payload := model.WaitlistPromotePayload{
			TenantID:  tenantID,
			StaffID:   "staff-1",
			ServiceID: "svc-1",
			Slot: gModel.TimeSlot{
				Date:  time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
				Start: 10 * 60,
				End:   11 * 60,
			},
		}
		expectBatch(d, []model.Record{record(t, 3, model.KindWaitlistPromote, payload, 0)})

		d.waitlist.EXPECT().
			OnSlotFreed(gomock.Any(), payload).
			Return(nil)

		d.outbox.EXPECT().
			MarkProcessed(gomock.Any(), gomock.Any(), int64(3), now).
			Return(nil)

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("processed effect is mirrored onto the event topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, true)

		payload := model.NotifyPayload{Channel: "email", Recipient: clientEmail, Template: "booking_confirmed"}
		rec := record(t, 7, model.KindNotify, payload, 0)
		expectBatch(d, []model.Record{rec})

		d.sender.EXPECT().
			Send(gomock.Any(), payload).
			Return(nil)

		d.outbox.EXPECT().
			MarkProcessed(gomock.Any(), gomock.Any(), int64(7), now).
			Return(nil)

		d.events.EXPECT().
			SendMessages(gomock.Any(), "agenda.events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				if assert.Len(t, messages, 1) {
					assert.Equal(t, model.KindNotify, messages[0].Key)
					assert.JSONEq(t, string(rec.Payload), string(messages[0].Value.(json.RawMessage)))
				}

				return nil
			})

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("failed effect is rescheduled with linear backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		payload := model.NotifyPayload{Channel: "email", Recipient: clientEmail, Template: "booking_confirmed"}
		expectBatch(d, []model.Record{record(t, 4, model.KindNotify, payload, 1)})

		d.sender.EXPECT().
			Send(gomock.Any(), payload).
			Return(errors.New("smtp timeout"))

		d.outbox.EXPECT().
			MarkFailed(gomock.Any(), gomock.Any(), int64(4), now.Add(60*time.Second)).
			Return(nil)

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("gives up after the final attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		payload := model.NotifyPayload{Channel: "email", Recipient: clientEmail, Template: "booking_confirmed"}
		expectBatch(d, []model.Record{record(t, 5, model.KindNotify, payload, 4)})

		d.sender.EXPECT().
			Send(gomock.Any(), payload).
			Return(errors.New("smtp timeout"))

		d.outbox.EXPECT().
			MarkProcessed(gomock.Any(), gomock.Any(), int64(5), now).
			Return(nil)

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("unknown kind is retried like any failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		expectBatch(d, []model.Record{record(t, 6, "mystery.kind", map[string]string{}, 0)})

		d.outbox.EXPECT().
			MarkFailed(gomock.Any(), gomock.Any(), int64(6), now.Add(30*time.Second)).
			Return(nil)

		processed, err := w.ProcessBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, processed)
	})

	t.Run("fetch failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		w, d := newWorker(ctrl, false)

		d.outbox.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(*sqlx.Tx) error) error {
				return fn(nil)
			})

		d.outbox.EXPECT().
			FetchDue(gomock.Any(), gomock.Any(), now, 20).
			Return(nil, errors.New("lock timeout"))

		_, err := w.ProcessBatch(context.Background())

		assert.Error(t, err)
	})
}
