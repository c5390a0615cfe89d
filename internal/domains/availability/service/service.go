package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/availability/model"
	bkService "agenda/internal/domains/blackout/service"
	"agenda/internal/domains/reservation/repository"
	whService "agenda/internal/domains/workinghours/service"
	"agenda/shared/clock"
	"agenda/shared/constant"
	gModel "agenda/shared/model"
)

type Availability interface {
	GetAvailableSlots(ctx context.Context, tenantID, staffID string, date time.Time, serviceDurationMinutes int) ([]gModel.TimeSlot, error)
	SlotAvailable(ctx context.Context, tenantID, staffID string, slot gModel.TimeSlot) (bool, error)
}

type serviceImpl struct {
	workingHours whService.WorkingHours
	blackouts    bkService.Blackout
	reservations repository.Reservation
	clock        clock.Clock
	otel         otel.Otel
}

func New(
	workingHours whService.WorkingHours,
	blackouts bkService.Blackout,
	reservations repository.Reservation,
	clock clock.Clock,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		workingHours: workingHours,
		blackouts:    blackouts,
		reservations: reservations,
		clock:        clock,
		otel:         otel,
	}
}

// GetAvailableSlots computes the bookable slots for one staff member on one
// date. The result is always computed fresh; callers that write based on it
// must re-run it inside their own check-and-write, never cache it.
func (s *serviceImpl) GetAvailableSlots(ctx context.Context, tenantID, staffID string, date time.Time, serviceDurationMinutes int) (slots []gModel.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetAvailableSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	date = gModel.Midnight(date)

	hours, err := s.workingHours.GetForWeekday(ctx, tenantID, staffID, int(date.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve working hours")

		return nil, fmt.Errorf("failed to resolve working hours: %w", err)
	}

	if hours.ID == "" || !hours.Window() {
		return []gModel.TimeSlot{}, nil
	}

	candidates := model.Candidates(date, hours.StartTime, hours.EndTime, hours.SlotDurationMinutes, serviceDurationMinutes)
	if len(candidates) == 0 {
		return []gModel.TimeSlot{}, nil
	}

	reservations, err := s.reservations.ListActiveForStaffDate(ctx, tenantID, staffID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations")

		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	busy := make([]gModel.TimeSlot, 0, len(reservations))
	for _, reservation := range reservations {
		busy = append(busy, reservation.Slot())
	}

	candidates = model.RemoveOverlapping(candidates, busy)

	periods, err := s.blackouts.PeriodsForDate(ctx, tenantID, date)
	if err != nil {
		return nil, err
	}

	if len(periods) > 0 {
		kept := make([]gModel.TimeSlot, 0, len(candidates))

	outer:
		for _, candidate := range candidates {
			start := candidate.Start
			for idx := range periods {
				if periods[idx].Covers(date, &start, &staffID) {
					continue outer
				}
			}

			kept = append(kept, candidate)
		}

		candidates = kept
	}

	candidates = model.RemovePast(candidates, s.clock.Now())

	return candidates, nil
}

// SlotAvailable reports whether the exact slot is currently offered by
// GetAvailableSlots. Booking flows call this immediately before their
// transactional write.
func (s *serviceImpl) SlotAvailable(ctx context.Context, tenantID, staffID string, slot gModel.TimeSlot) (bool, error) {
	slots, err := s.GetAvailableSlots(ctx, tenantID, staffID, slot.Date, slot.DurationMinutes())
	if err != nil {
		return false, err
	}

	for _, candidate := range slots {
		if gModel.SameDay(candidate.Date, slot.Date) && candidate.Start == slot.Start && candidate.End == slot.End {
			return true, nil
		}
	}

	return false, nil
}
