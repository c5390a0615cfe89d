package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/internal/domains/outbox/model"
	"agenda/internal/domains/outbox/repository"
	poService "agenda/internal/domains/policy/service"
	trService "agenda/internal/domains/trust/service"
	wlService "agenda/internal/domains/waitlist/service"
	"agenda/internal/notifier"
	"agenda/shared/clock"
	"agenda/shared/constant"
)

// Worker drains the outbox. Effects were committed alongside the state
// transitions that produced them; the worker interprets each kind after the
// fact so a slow or failing side effect can never roll back a booking or
// cancellation. Multiple workers can run concurrently thanks to SKIP LOCKED.
type Worker struct {
	outbox   repository.Outbox
	trust    trService.Trust
	policies poService.Policy
	waitlist wlService.Waitlist
	sender   notifier.Sender
	events   kafka.Client
	cfg      *config.Config
	clock    clock.Clock
	otel     otel.Otel
}

func New(
	outbox repository.Outbox,
	trust trService.Trust,
	policies poService.Policy,
	waitlist wlService.Waitlist,
	sender notifier.Sender,
	events kafka.Client,
	cfg *config.Config,
	clock clock.Clock,
	otel otel.Otel,
) *Worker {
	return &Worker{
		outbox:   outbox,
		trust:    trust,
		policies: policies,
		waitlist: waitlist,
		sender:   sender,
		events:   events,
		cfg:      cfg,
		clock:    clock,
		otel:     otel,
	}
}

// Run polls until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	interval := time.Duration(w.cfg.Outbox.PollIntervalSeconds) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("outbox worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("outbox worker stopped")

			return
		case <-ticker.C:
			if _, err := w.ProcessBatch(ctx); err != nil {
				log.Error().Err(err).Msg("outbox batch failed")
			}
		}
	}
}

// ProcessBatch claims one batch of due effects and dispatches them. The
// claim, the outcome bookkeeping and the row locks share one transaction.
func (w *Worker) ProcessBatch(ctx context.Context) (processed int, err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".outbox.ProcessBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := w.clock.Now()

	err = w.outbox.WithinTx(ctx, func(tx *sqlx.Tx) error {
		records, err := w.outbox.FetchDue(ctx, tx, now, w.cfg.Outbox.BatchSize)
		if err != nil {
			return err
		}

		for _, record := range records {
			if dispatchErr := w.dispatch(ctx, record); dispatchErr != nil {
				if record.Attempts+1 >= w.cfg.Outbox.MaxAttempts {
					log.Error().Err(dispatchErr).
						Int64("effectID", record.ID).
						Str("kind", record.Kind).
						Int("attempts", record.Attempts+1).
						Msg("giving up on outbox effect")

					if err := w.outbox.MarkProcessed(ctx, tx, record.ID, now); err != nil {
						return err
					}

					continue
				}

				log.Warn().Err(dispatchErr).
					Int64("effectID", record.ID).
					Str("kind", record.Kind).
					Msg("outbox effect failed, will retry")

				backoff := time.Duration(w.cfg.Outbox.RetryBackoffSeconds*(record.Attempts+1)) * time.Second
				if err := w.outbox.MarkFailed(ctx, tx, record.ID, now.Add(backoff)); err != nil {
					return err
				}

				continue
			}

			if err := w.outbox.MarkProcessed(ctx, tx, record.ID, now); err != nil {
				return err
			}

			w.publish(ctx, record)

			processed++
		}

		return nil
	})
	if err != nil {
		return processed, fmt.Errorf("failed to process outbox batch: %w", err)
	}

	return processed, nil
}

func (w *Worker) dispatch(ctx context.Context, record model.Record) error {
	switch record.Kind {
	case model.KindNotify:
		var payload model.NotifyPayload
		if err := json.Unmarshal(record.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode notify payload: %w", err)
		}

		return w.sender.Send(ctx, payload) //nolint:wrapcheck

	case model.KindTrustIncrement:
		var payload model.TrustIncrementPayload
		if err := json.Unmarshal(record.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode trust payload: %w", err)
		}

		policy, err := w.policies.Get(ctx, payload.TenantID)
		if err != nil {
			return err
		}

		_, _, err = w.trust.RecordCancellation(ctx, payload.TenantID, payload.ClientEmail, policy)

		return err

	case model.KindWaitlistPromote:
		var payload model.WaitlistPromotePayload
		if err := json.Unmarshal(record.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode waitlist payload: %w", err)
		}

		return w.waitlist.OnSlotFreed(ctx, payload) //nolint:wrapcheck

	default:
		return fmt.Errorf("unknown outbox effect kind: %s", record.Kind)
	}
}

// publish mirrors the processed effect onto the event topic. Best effort;
// the effect already ran, so a broker hiccup only costs the event.
func (w *Worker) publish(ctx context.Context, record model.Record) {
	if !w.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   record.Kind,
		Value: json.RawMessage(record.Payload),
	}

	if err := w.events.SendMessages(ctx, w.cfg.Kafka.EventTopic, message); err != nil {
		log.Error().Err(err).Str("kind", record.Kind).Msg("failed to publish outbox event")
	}
}
