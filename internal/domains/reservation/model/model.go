package model

import (
	"time"

	obModel "agenda/internal/domains/outbox/model"
	gModel "agenda/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldTenantID    = "tenant_id"
	FieldStaffID     = "staff_id"
	FieldServiceID   = "service_id"
	FieldClientID    = "client_id"
	FieldClientEmail = "client_email"
	FieldDate        = "booking_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldState       = "state"
	FieldCancelToken = "cancel_token"
)

// State is the closed set of reservation states. BOOKED is the only live
// state; CANCELLED and COMPLETED are terminal.
type State string

const (
	StateBooked    State = "BOOKED"
	StateCancelled State = "CANCELLED"
	StateCompleted State = "COMPLETED"
)

func (s State) Terminal() bool {
	return s == StateCancelled || s == StateCompleted
}

// Notification templates dispatched through the outbox.
const (
	TemplateBookingConfirmed   = "booking_confirmed"
	TemplateBookingCancelled   = "booking_cancelled"
	TemplateBookingRescheduled = "booking_rescheduled"
)

// Reservation is a single booking. Rows are never deleted; every lifecycle
// step is a state transition recorded in place.
type Reservation struct {
	ID          string           `db:"id"`
	TenantID    string           `db:"tenant_id"`
	StaffID     string           `db:"staff_id"`
	ServiceID   string           `db:"service_id"`
	ClientID    *string          `db:"client_id"`
	ClientEmail string           `db:"client_email"`
	Date        time.Time        `db:"booking_date"`
	StartTime   gModel.TimeOfDay `db:"start_time"`
	EndTime     gModel.TimeOfDay `db:"end_time"`
	State       State            `db:"state"`
	CancelToken string           `db:"cancel_token"`
	gModel.Metadata
}

// Slot returns the reservation's time slot as a value object.
func (r Reservation) Slot() gModel.TimeSlot {
	return gModel.TimeSlot{Date: gModel.Midnight(r.Date), Start: r.StartTime, End: r.EndTime}
}

// InPast reports whether the appointment has already started.
func (r Reservation) InPast(now time.Time) bool {
	return !r.Slot().StartsAt().After(now)
}

// HoursUntilStart returns the whole hours remaining before the appointment.
func (r Reservation) HoursUntilStart(now time.Time) int {
	return int(r.Slot().StartsAt().Sub(now).Hours())
}

// Actor identifies who is performing a lifecycle operation.
type Actor struct {
	Email       string
	ClientID    string
	Admin       bool
	CancelToken string
}

// MayCancel reports whether the actor is entitled to cancel this reservation.
func (r Reservation) MayCancel(actor Actor) bool {
	if actor.Admin {
		return true
	}

	if actor.CancelToken != "" && actor.CancelToken == r.CancelToken {
		return true
	}

	return actor.Email != "" && actor.Email == r.ClientEmail
}

// Transition errors reported by the pure state machine. The service layer
// maps them onto client-facing failures.
type TransitionError string

func (e TransitionError) Error() string {
	return string(e)
}

const (
	ErrNotBooked       TransitionError = "reservation is not in BOOKED state"
	ErrAlreadyTerminal TransitionError = "reservation is already in a terminal state"
	ErrInPast          TransitionError = "reservation is in the past"
)

// Cancel returns the cancelled copy of the reservation together with the
// side effects to enqueue. Admin and system cancellations are exempt from
// trust accounting. The state machine stays pure: persistence and dispatch
// are the caller's job.
func Cancel(r Reservation, actor Actor, now time.Time) (Reservation, []obModel.Effect, error) {
	if r.State != StateBooked {
		return r, nil, ErrAlreadyTerminal
	}

	next := r
	next.State = StateCancelled
	next.Touch(now, actorName(actor))

	effects := []obModel.Effect{
		{
			Kind: obModel.KindWaitlistPromote,
			Payload: obModel.WaitlistPromotePayload{
				TenantID:  r.TenantID,
				StaffID:   r.StaffID,
				ServiceID: r.ServiceID,
				Slot:      r.Slot(),
			},
		},
		{
			Kind: obModel.KindNotify,
			Payload: obModel.NotifyPayload{
				Channel:   "email",
				Recipient: r.ClientEmail,
				Template:  TemplateBookingCancelled,
				Data: map[string]any{
					"reservation_id": r.ID,
					"date":           r.Date.Format("2006-01-02"),
					"start_time":     r.StartTime.String(),
				},
			},
		},
	}

	if !actor.Admin {
		effects = append(effects, obModel.Effect{
			Kind: obModel.KindTrustIncrement,
			Payload: obModel.TrustIncrementPayload{
				TenantID:    r.TenantID,
				ClientEmail: r.ClientEmail,
			},
		})
	}

	return next, effects, nil
}

// Complete transitions BOOKED to COMPLETED. Whether "after the appointment's
// end" holds is a policy decision made by the caller.
func Complete(r Reservation, actor Actor, now time.Time) (Reservation, error) {
	if r.State != StateBooked {
		return r, ErrNotBooked
	}

	next := r
	next.State = StateCompleted
	next.Touch(now, actorName(actor))

	return next, nil
}

// Reschedule moves a BOOKED reservation to a new slot without changing state.
// Availability of the new slot is verified by the caller inside the same
// transaction that persists the move.
func Reschedule(r Reservation, slot gModel.TimeSlot, actor Actor, now time.Time) (Reservation, []obModel.Effect, error) {
	if r.State != StateBooked {
		return r, nil, ErrNotBooked
	}

	if r.InPast(now) {
		return r, nil, ErrInPast
	}

	next := r
	next.Date = slot.Date
	next.StartTime = slot.Start
	next.EndTime = slot.End
	next.Touch(now, actorName(actor))

	effects := []obModel.Effect{
		{
			Kind: obModel.KindNotify,
			Payload: obModel.NotifyPayload{
				Channel:   "email",
				Recipient: r.ClientEmail,
				Template:  TemplateBookingRescheduled,
				Data: map[string]any{
					"reservation_id": r.ID,
					"date":           slot.Date.Format("2006-01-02"),
					"start_time":     slot.Start.String(),
				},
			},
		},
	}

	return next, effects, nil
}

func actorName(actor Actor) string {
	if actor.Email != "" {
		return actor.Email
	}

	if actor.Admin {
		return "admin"
	}

	return "system"
}
