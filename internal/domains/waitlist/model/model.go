package model

import (
	"time"

	"github.com/lib/pq"

	gModel "agenda/shared/model"
)

const (
	TableName  = "waitlist_entries"
	EntityName = "waitlist entry"

	FieldID                = "id"
	FieldTenantID          = "tenant_id"
	FieldStaffID           = "staff_id"
	FieldServiceID         = "service_id"
	FieldClientEmail       = "client_email"
	FieldState             = "state"
	FieldPriority          = "priority"
	FieldConfirmationToken = "confirmation_token"
	FieldTokenExpiresAt    = "token_expires_at"
	FieldReservationID     = "reservation_id"
)

// State is the closed set of waitlist entry states. CONVERTED, EXPIRED and
// CANCELLED are terminal; an entry converts to at most one reservation.
type State string

const (
	StateActive    State = "ACTIVE"
	StateNotified  State = "NOTIFIED"
	StateConverted State = "CONVERTED"
	StateExpired   State = "EXPIRED"
	StateCancelled State = "CANCELLED"
)

func (s State) Terminal() bool {
	return s == StateConverted || s == StateExpired || s == StateCancelled
}

// Open reports whether the entry still counts against the per-client limit.
func (s State) Open() bool {
	return s == StateActive || s == StateNotified
}

// Notification templates dispatched through the outbox.
const (
	TemplateWaitlistNotified  = "waitlist_notified"
	TemplateWaitlistConverted = "waitlist_converted"
	TemplateWaitlistCancelled = "waitlist_cancelled"
)

// WaitlistEntry records one client's standing interest in a slot that is
// currently taken. Priority is assigned by the database in insertion order.
// The offered slot columns are set when the entry is notified and pin the
// exact slot the confirmation token is valid for.
type WaitlistEntry struct {
	ID                string            `db:"id"`
	TenantID          string            `db:"tenant_id"`
	StaffID           string            `db:"staff_id"`
	ServiceID         string            `db:"service_id"`
	ClientEmail       string            `db:"client_email"`
	PreferredDate     *time.Time        `db:"preferred_date"`
	PreferredWeekdays pq.Int64Array     `db:"preferred_weekdays"`
	PreferredStart    gModel.TimeOfDay  `db:"preferred_start_time"`
	PreferredEnd      gModel.TimeOfDay  `db:"preferred_end_time"`
	State             State             `db:"state"`
	Priority          int64             `db:"priority"`
	ConfirmationToken *string           `db:"confirmation_token"`
	TokenExpiresAt    *time.Time        `db:"token_expires_at"`
	OfferedDate       *time.Time        `db:"offered_date"`
	OfferedStart      *gModel.TimeOfDay `db:"offered_start_time"`
	OfferedEnd        *gModel.TimeOfDay `db:"offered_end_time"`
	ReservationID     *string           `db:"reservation_id"`
	gModel.Metadata
}

// Matches reports whether a freed slot satisfies the entry's preferences:
// the date matches the preferred date or its weekday is among the preferred
// weekdays, and the preferred time range contains the slot's start.
func (e WaitlistEntry) Matches(slot gModel.TimeSlot) bool {
	dateOK := false

	if e.PreferredDate != nil && gModel.SameDay(*e.PreferredDate, slot.Date) {
		dateOK = true
	}

	if !dateOK {
		weekday := int64(slot.Date.Weekday())
		for _, preferred := range e.PreferredWeekdays {
			if preferred == weekday {
				dateOK = true

				break
			}
		}
	}

	if !dateOK {
		return false
	}

	return e.PreferredStart <= slot.Start && slot.Start < e.PreferredEnd
}

// OfferedSlot returns the slot the entry was notified for. Valid only in
// NOTIFIED state and later.
func (e WaitlistEntry) OfferedSlot() gModel.TimeSlot {
	if e.OfferedDate == nil || e.OfferedStart == nil || e.OfferedEnd == nil {
		return gModel.TimeSlot{}
	}

	return gModel.TimeSlot{Date: gModel.Midnight(*e.OfferedDate), Start: *e.OfferedStart, End: *e.OfferedEnd}
}

// TokenExpired reports whether the confirmation window has closed.
func (e WaitlistEntry) TokenExpired(now time.Time) bool {
	return e.TokenExpiresAt != nil && now.After(*e.TokenExpiresAt)
}

// Transition errors reported by the pure state machine.
type TransitionError string

func (e TransitionError) Error() string {
	return string(e)
}

const (
	ErrNotActive   TransitionError = "waitlist entry is not in ACTIVE state"
	ErrNotNotified TransitionError = "waitlist entry is not in NOTIFIED state"
	ErrTerminal    TransitionError = "waitlist entry is already in a terminal state"
)

// Notify moves an ACTIVE entry to NOTIFIED, attaching the confirmation token
// and the exact slot being offered.
func Notify(e WaitlistEntry, slot gModel.TimeSlot, token string, now time.Time, ttl time.Duration) (WaitlistEntry, error) {
	if e.State != StateActive {
		return e, ErrNotActive
	}

	expiresAt := now.Add(ttl)

	next := e
	next.State = StateNotified
	next.ConfirmationToken = &token
	next.TokenExpiresAt = &expiresAt
	next.OfferedDate = &slot.Date
	next.OfferedStart = &slot.Start
	next.OfferedEnd = &slot.End
	next.Touch(now, "system")

	return next, nil
}

// Convert moves a NOTIFIED entry to CONVERTED with a back-reference to the
// reservation the confirmation produced.
func Convert(e WaitlistEntry, reservationID string, now time.Time) (WaitlistEntry, error) {
	if e.State != StateNotified {
		return e, ErrNotNotified
	}

	next := e
	next.State = StateConverted
	next.ReservationID = &reservationID
	next.Touch(now, e.ClientEmail)

	return next, nil
}

// Expire terminates an entry whose offer lapsed or whose slot was taken.
func Expire(e WaitlistEntry, now time.Time) (WaitlistEntry, error) {
	if e.State.Terminal() {
		return e, ErrTerminal
	}

	next := e
	next.State = StateExpired
	next.Touch(now, "system")

	return next, nil
}

// Cancel withdraws an entry. Valid only from ACTIVE or NOTIFIED.
func Cancel(e WaitlistEntry, actor string, now time.Time) (WaitlistEntry, error) {
	if !e.State.Open() {
		return e, ErrTerminal
	}

	next := e
	next.State = StateCancelled
	next.Touch(now, actor)

	return next, nil
}
