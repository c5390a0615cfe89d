package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Waitlist=MockWaitlistService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	obModel "agenda/internal/domains/outbox/model"
	obRepo "agenda/internal/domains/outbox/repository"
	rsModel "agenda/internal/domains/reservation/model"
	rsService "agenda/internal/domains/reservation/service"
	"agenda/internal/domains/waitlist/model"
	"agenda/internal/domains/waitlist/model/dto"
	"agenda/internal/domains/waitlist/repository"
	"agenda/shared/clock"
	"agenda/shared/constant"
	"agenda/shared/failure"
	gModel "agenda/shared/model"
)

type Waitlist interface {
	Join(ctx context.Context, tenantID string, req dto.JoinWaitlistRequest) (dto.WaitlistEntryResponse, error)
	OnSlotFreed(ctx context.Context, payload obModel.WaitlistPromotePayload) error
	Convert(ctx context.Context, token string) (dto.WaitlistEntryResponse, error)
	Cancel(ctx context.Context, tenantID, entryID string, actor rsModel.Actor) error
	ListForClient(ctx context.Context, tenantID, clientEmail string) ([]dto.WaitlistEntryResponse, error)
	SweepExpired(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo         repository.Waitlist
	reservations rsService.Reservation
	outbox       obRepo.Outbox
	cfg          *config.Config
	clock        clock.Clock
	otel         otel.Otel
}

func New(
	repo repository.Waitlist,
	reservations rsService.Reservation,
	outbox obRepo.Outbox,
	cfg *config.Config,
	clock clock.Clock,
	otel otel.Otel,
) Waitlist {
	return &serviceImpl{
		repo:         repo,
		reservations: reservations,
		outbox:       outbox,
		cfg:          cfg,
		clock:        clock,
		otel:         otel,
	}
}

// Join creates an ACTIVE entry and returns it with its queue position. The
// per-client limit keeps one client from squatting on the whole queue.
func (s *serviceImpl) Join(ctx context.Context, tenantID string, req dto.JoinWaitlistRequest) (res dto.WaitlistEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitlist.Join")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := req.ToModel(tenantID, s.clock.Now())
	if err != nil {
		return res, err
	}

	open, err := s.repo.CountOpenForClient(ctx, tenantID, entry.ClientEmail)
	if err != nil {
		return res, err
	}

	if open >= s.cfg.Booking.WaitlistMaxOpenPerClient {
		return res, failure.Conflict("too many open waitlist entries for this client") //nolint:wrapcheck
	}

	entry, err = s.repo.Insert(ctx, entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to join waitlist")

		return res, fmt.Errorf("failed to join waitlist: %w", err)
	}

	position, err := s.repo.QueuePosition(ctx, entry)
	if err != nil {
		return res, err
	}

	res.FromModel(entry)
	res.QueuePosition = position

	return res, nil
}

// OnSlotFreed offers a freed slot to the oldest matching ACTIVE entry. The
// conditional transition re-checks the entry is still ACTIVE at write time,
// so a concurrent promotion or withdrawal cannot produce a second offer.
// At most one entry is promoted per freed slot.
func (s *serviceImpl) OnSlotFreed(ctx context.Context, payload obModel.WaitlistPromotePayload) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitlist.OnSlotFreed")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := s.repo.FindCandidate(ctx, payload.TenantID, payload.StaffID, payload.ServiceID, payload.Slot)
	if err != nil {
		return err
	}

	if entry.ID == "" {
		return nil
	}

	now := s.clock.Now()
	ttl := time.Duration(s.cfg.Booking.WaitlistConfirmHours) * time.Hour

	next, err := model.Notify(entry, payload.Slot, uuid.NewString(), now, ttl)
	if err != nil {
		return failure.Conflict(err.Error()) //nolint:wrapcheck
	}

	applied, err := s.repo.Transition(ctx, next, model.StateActive)
	if err != nil {
		return err
	}

	if !applied {
		log.Info().Str("entryID", entry.ID).Msg("waitlist entry moved concurrently, skipping promotion")

		return nil
	}

	s.enqueueNotify(ctx, next.TenantID, obModel.NotifyPayload{
		Channel:   "email",
		Recipient: next.ClientEmail,
		Template:  model.TemplateWaitlistNotified,
		Data: map[string]any{
			"entry_id":           next.ID,
			"confirmation_token": *next.ConfirmationToken,
			"date":               payload.Slot.Date.Format(constant.DateOnlyFormat),
			"start_time":         payload.Slot.Start.String(),
			"expires_at":         next.TokenExpiresAt.Format(time.RFC3339),
		},
	})

	return nil
}

// Convert redeems a confirmation token. The slot is re-verified through the
// normal booking path because up to the full confirmation window may have
// passed since the offer; on conflict the entry expires rather than retries.
func (s *serviceImpl) Convert(ctx context.Context, token string) (res dto.WaitlistEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitlist.Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return res, fmt.Errorf("failed to look up waitlist token: %w", err)
	}

	if entry.ID == "" {
		return res, failure.InvalidToken //nolint:wrapcheck
	}

	if entry.State != model.StateNotified {
		return res, failure.EntryNotAvailable //nolint:wrapcheck
	}

	now := s.clock.Now()

	if entry.TokenExpired(now) {
		s.expire(ctx, entry)

		return res, failure.TokenExpired //nolint:wrapcheck
	}

	slot := entry.OfferedSlot()

	reservation := rsModel.Reservation{
		ID:          uuid.NewString(),
		TenantID:    entry.TenantID,
		StaffID:     entry.StaffID,
		ServiceID:   entry.ServiceID,
		ClientEmail: entry.ClientEmail,
		Date:        slot.Date,
		StartTime:   slot.Start,
		EndTime:     slot.End,
		State:       rsModel.StateBooked,
		CancelToken: uuid.NewString(),
		Metadata:    gModel.NewMetadata(now, entry.ClientEmail),
	}

	booked, err := s.reservations.BookEntity(ctx, reservation)
	if err != nil {
		if errors.Is(err, failure.SlotUnavailable) {
			s.expire(ctx, entry)

			return res, failure.SlotNoLongerAvailable //nolint:wrapcheck
		}

		return res, err
	}

	next, err := model.Convert(entry, booked.ID, now)
	if err != nil {
		return res, failure.Conflict(err.Error()) //nolint:wrapcheck
	}

	applied, err := s.repo.Transition(ctx, next, model.StateNotified)
	if err != nil {
		return res, err
	}

	if !applied {
		log.Warn().Str("entryID", entry.ID).Msg("waitlist entry moved concurrently after booking")
	}

	s.enqueueNotify(ctx, next.TenantID, obModel.NotifyPayload{
		Channel:   "email",
		Recipient: next.ClientEmail,
		Template:  model.TemplateWaitlistConverted,
		Data: map[string]any{
			"entry_id":       next.ID,
			"reservation_id": booked.ID,
			"date":           slot.Date.Format(constant.DateOnlyFormat),
			"start_time":     slot.Start.String(),
		},
	})

	res.FromModel(next)

	return res, nil
}

// Cancel withdraws an entry on behalf of its owner or an admin.
func (s *serviceImpl) Cancel(ctx context.Context, tenantID, entryID string, actor rsModel.Actor) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitlist.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry, err := s.repo.ResolveByID(ctx, tenantID, entryID)
	if err != nil {
		return fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	if entry.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if !actor.Admin && actor.Email != entry.ClientEmail {
		return failure.Forbidden("you are not allowed to cancel this waitlist entry") //nolint:wrapcheck
	}

	next, err := model.Cancel(entry, actor.Email, s.clock.Now())
	if err != nil {
		return failure.AlreadyTerminal //nolint:wrapcheck
	}

	applied, err := s.repo.Transition(ctx, next, entry.State)
	if err != nil {
		return err
	}

	if !applied {
		return failure.AlreadyTerminal //nolint:wrapcheck
	}

	s.enqueueNotify(ctx, next.TenantID, obModel.NotifyPayload{
		Channel:   "email",
		Recipient: next.ClientEmail,
		Template:  model.TemplateWaitlistCancelled,
		Data:      map[string]any{"entry_id": next.ID},
	})

	return nil
}

func (s *serviceImpl) ListForClient(ctx context.Context, tenantID, clientEmail string) (res []dto.WaitlistEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitlist.ListForClient")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, err := s.repo.ListForClient(ctx, tenantID, clientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist entries: %w", err)
	}

	res = make([]dto.WaitlistEntryResponse, 0, len(entries))

	for _, entry := range entries {
		item := dto.WaitlistEntryResponse{}
		item.FromModel(entry)
		res = append(res, item)
	}

	return res, nil
}

// SweepExpired expires stale NOTIFIED entries and, when the offered slot is
// still free, immediately re-offers it to the next matching ACTIVE entry.
// Correctness does not depend on the sweep: convert enforces expiry lazily.
func (s *serviceImpl) SweepExpired(ctx context.Context) (expired int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitlist.SweepExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	stale, err := s.repo.ListStaleNotified(ctx, now, s.cfg.Outbox.BatchSize)
	if err != nil {
		return 0, err
	}

	for _, entry := range stale {
		next, err := model.Expire(entry, now)
		if err != nil {
			continue
		}

		applied, err := s.repo.Transition(ctx, next, model.StateNotified)
		if err != nil {
			log.Error().Err(err).Str("entryID", entry.ID).Msg("failed to expire waitlist entry")

			continue
		}

		if !applied {
			continue
		}

		expired++

		slot := entry.OfferedSlot()

		taken, err := s.reservations.SlotTaken(ctx, entry.TenantID, entry.StaffID, slot)
		if err != nil {
			log.Error().Err(err).Str("entryID", entry.ID).Msg("failed to re-check freed slot")

			continue
		}

		if taken {
			continue
		}

		err = s.OnSlotFreed(ctx, obModel.WaitlistPromotePayload{
			TenantID:  entry.TenantID,
			StaffID:   entry.StaffID,
			ServiceID: entry.ServiceID,
			Slot:      slot,
		})
		if err != nil {
			log.Error().Err(err).Str("entryID", entry.ID).Msg("failed to re-offer freed slot")
		}
	}

	return expired, nil
}

// expire transitions an entry to EXPIRED, logging rather than surfacing
// errors because expiry is always a side effect of some other failure.
func (s *serviceImpl) expire(ctx context.Context, entry model.WaitlistEntry) {
	next, err := model.Expire(entry, s.clock.Now())
	if err != nil {
		return
	}

	if _, err := s.repo.Transition(ctx, next, entry.State); err != nil {
		log.Error().Err(err).Str("entryID", entry.ID).Msg("failed to expire waitlist entry")
	}
}

// enqueueNotify persists a notification effect in its own short transaction.
// Notifications are best effort relative to the state transition that caused
// them; a failed enqueue is logged and dropped.
func (s *serviceImpl) enqueueNotify(ctx context.Context, tenantID string, payload obModel.NotifyPayload) {
	record, err := obModel.Effect{Kind: obModel.KindNotify, Payload: payload}.ToRecord(tenantID, s.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize waitlist notification")

		return
	}

	err = s.outbox.WithinTx(ctx, func(tx *sqlx.Tx) error {
		return s.outbox.InsertTx(ctx, tx, []obModel.Record{record})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue waitlist notification")
	}
}
