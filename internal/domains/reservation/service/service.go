package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	avService "agenda/internal/domains/availability/service"
	obModel "agenda/internal/domains/outbox/model"
	poService "agenda/internal/domains/policy/service"
	"agenda/internal/domains/reservation/model"
	"agenda/internal/domains/reservation/model/dto"
	"agenda/internal/domains/reservation/repository"
	trService "agenda/internal/domains/trust/service"
	"agenda/shared"
	"agenda/shared/clock"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	gModel "agenda/shared/model"
)

type Reservation interface {
	Book(ctx context.Context, tenantID string, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	BookEntity(ctx context.Context, res model.Reservation) (model.Reservation, error)
	Cancel(ctx context.Context, tenantID, id string, actor model.Actor, reason string) error
	CancelByToken(ctx context.Context, token, reason string) error
	Reschedule(ctx context.Context, tenantID, id string, actor model.Actor, req dto.RescheduleReservationRequest) (dto.ReservationResponse, error)
	Complete(ctx context.Context, tenantID, id string, actor model.Actor) error
	SlotTaken(ctx context.Context, tenantID, staffID string, slot gModel.TimeSlot) (bool, error)
	Get(ctx context.Context, tenantID, id string) (dto.ReservationResponse, error)
	List(ctx context.Context, tenantID string, params gDto.QueryParams, filter dto.ListReservationsFilter) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo         repository.Reservation
	availability avService.Availability
	trust        trService.Trust
	policies     poService.Policy
	clock        clock.Clock
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	availability avService.Availability,
	trust trService.Trust,
	policies poService.Policy,
	clock clock.Clock,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		trust:        trust,
		policies:     policies,
		clock:        clock,
		otel:         otel,
	}
}

// Book validates the request, gates on client trust, re-checks availability
// and hands the slot to the repository's check-and-write. The availability
// check is advisory; the transactional overlap check inside InsertBooked is
// what actually defends the no-double-booking invariant.
func (s *serviceImpl) Book(ctx context.Context, tenantID string, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	slot, err := req.Slot()
	if err != nil {
		return res, failure.ValidationError(fmt.Sprintf("invalid slot: %v", err)) //nolint:wrapcheck
	}

	reservation, err := s.BookEntity(ctx, req.ToModel(tenantID, slot, s.clock.Now()))
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)
	res.CancelToken = reservation.CancelToken

	return res, nil
}

// BookEntity books an already-built reservation. The waitlist conversion
// path enters here with the entry's stored staff, service, client and slot.
func (s *serviceImpl) BookEntity(ctx context.Context, res model.Reservation) (out model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.BookEntity")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.trust.CanBook(ctx, res.TenantID, res.ClientEmail); err != nil {
		return out, err
	}

	available, err := s.availability.SlotAvailable(ctx, res.TenantID, res.StaffID, res.Slot())
	if err != nil {
		return out, err
	}

	if !available {
		return out, failure.SlotUnavailable //nolint:wrapcheck
	}

	effects := []obModel.Effect{
		{
			Kind: obModel.KindNotify,
			Payload: obModel.NotifyPayload{
				Channel:   "email",
				Recipient: res.ClientEmail,
				Template:  model.TemplateBookingConfirmed,
				Data: map[string]any{
					"reservation_id": res.ID,
					"date":           res.Date.Format(constant.DateOnlyFormat),
					"start_time":     res.StartTime.String(),
					"cancel_token":   res.CancelToken,
				},
			},
		},
	}

	records, err := toRecords(res.TenantID, s.clock.Now(), effects)
	if err != nil {
		return out, err
	}

	if err = s.repo.InsertBooked(ctx, res, records); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return out, failure.SlotUnavailable //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to book reservation")

		return out, fmt.Errorf("failed to book reservation: %w", err)
	}

	return res, nil
}

// Cancel transitions a reservation to CANCELLED on behalf of its owner, an
// admin or a cancel-token holder. Non-admin cancellations are gated by the
// tenant's minimum-notice policy. Side effects commit with the transition and
// are dispatched after, so their failure never surfaces to the canceller.
func (s *serviceImpl) Cancel(ctx context.Context, tenantID, id string, actor model.Actor, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return s.cancel(ctx, reservation, actor, reason)
}

// CancelByToken serves public cancellation links. The token is the only
// credential, so a matching token authorizes the cancel by itself.
func (s *serviceImpl) CancelByToken(ctx context.Context, token, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CancelByToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.GetByCancelToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return s.cancel(ctx, reservation, model.Actor{CancelToken: token}, reason)
}

func (s *serviceImpl) cancel(ctx context.Context, reservation model.Reservation, actor model.Actor, reason string) error {
	if !reservation.MayCancel(actor) {
		return failure.Forbidden("you are not allowed to cancel this reservation") //nolint:wrapcheck
	}

	now := s.clock.Now()

	if !actor.Admin {
		policy, err := s.policies.Get(ctx, reservation.TenantID)
		if err != nil {
			return err
		}

		if policy.Enabled && !reservation.InPast(now) {
			remaining := reservation.HoursUntilStart(now)
			if remaining < policy.MinNoticeHours {
				return failure.CancellationWindowViolation(policy.MinNoticeHours, remaining) //nolint:wrapcheck
			}
		}
	}

	next, effects, err := model.Cancel(reservation, actor, now)
	if err != nil {
		return failure.Conflict(err.Error()) //nolint:wrapcheck
	}

	if reason != "" {
		log.Info().Str("reservationID", reservation.ID).Str("reason", reason).Msg("reservation cancelled")
	}

	records, err := toRecords(reservation.TenantID, now, effects)
	if err != nil {
		return err
	}

	if err := s.repo.Transition(ctx, next, model.StateBooked, records); err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return failure.Conflict("reservation state changed concurrently") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	return nil
}

// Reschedule moves a BOOKED reservation to a new slot. The repository
// re-runs the overlap check excluding the reservation's own row inside the
// same advisory-lock transaction.
func (s *serviceImpl) Reschedule(ctx context.Context, tenantID, id string, actor model.Actor, req dto.RescheduleReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if !reservation.MayCancel(actor) {
		return res, failure.Forbidden("you are not allowed to reschedule this reservation") //nolint:wrapcheck
	}

	slot, err := req.Slot()
	if err != nil {
		return res, failure.ValidationError(fmt.Sprintf("invalid slot: %v", err)) //nolint:wrapcheck
	}

	now := s.clock.Now()

	next, effects, err := model.Reschedule(reservation, slot, actor, now)
	if err != nil {
		return res, failure.Conflict(err.Error()) //nolint:wrapcheck
	}

	records, err := toRecords(tenantID, now, effects)
	if err != nil {
		return res, err
	}

	if err = s.repo.UpdateSlot(ctx, next, records); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotTaken):
			return res, failure.SlotUnavailable //nolint:wrapcheck
		case errors.Is(err, repository.ErrStaleState):
			return res, failure.Conflict("reservation state changed concurrently") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to reschedule reservation")

		return res, fmt.Errorf("failed to reschedule reservation: %w", err)
	}

	res.FromModel(next)

	return res, nil
}

// Complete marks an appointment as held. Only allowed once the appointment's
// end time has passed.
func (s *serviceImpl) Complete(ctx context.Context, tenantID, id string, actor model.Actor) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	now := s.clock.Now()

	if reservation.Slot().EndsAt().After(now) {
		return failure.Conflict("the appointment has not ended yet") //nolint:wrapcheck
	}

	next, err := model.Complete(reservation, actor, now)
	if err != nil {
		return failure.Conflict(err.Error()) //nolint:wrapcheck
	}

	if err = s.repo.Transition(ctx, next, model.StateBooked, nil); err != nil {
		if errors.Is(err, repository.ErrStaleState) {
			return failure.Conflict("reservation state changed concurrently") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to complete reservation")

		return fmt.Errorf("failed to complete reservation: %w", err)
	}

	return nil
}

func (s *serviceImpl) SlotTaken(ctx context.Context, tenantID, staffID string, slot gModel.TimeSlot) (bool, error) {
	return s.repo.SlotTaken(ctx, tenantID, staffID, slot) //nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, tenantID, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return res, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, tenantID string, params gDto.QueryParams, listFilter dto.ListReservationsFilter) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTenantID, Value: tenantID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if listFilter.StaffID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStaffID, Value: listFilter.StaffID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if listFilter.ClientEmail != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldClientEmail, Value: listFilter.ClientEmail, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	switch {
	case listFilter.State != "":
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldState, Value: listFilter.State, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	case listFilter.IncludeCancelled == nil || !*listFilter.IncludeCancelled:
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldState, Value: string(model.StateCancelled), Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	reservations, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list reservations: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	res.Items = make([]dto.ReservationResponse, 0, len(reservations))

	for _, reservation := range reservations {
		item := dto.ReservationResponse{}
		item.FromModel(reservation)
		res.Items = append(res.Items, item)
	}

	res.Total = total
	res.TotalPages = shared.CalculateTotalPage(total, params.Limit)

	return res, nil
}

func toRecords(tenantID string, now time.Time, effects []obModel.Effect) ([]obModel.Record, error) {
	records := make([]obModel.Record, 0, len(effects))

	for _, effect := range effects {
		record, err := effect.ToRecord(tenantID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize effect: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}
