package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It is stored as an integer column and rendered as "HH:MM".
type TimeOfDay int

const (
	MinutesPerDay = 24 * 60
)

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Valid reports whether the value falls within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// At anchors the time of day onto the given calendar date.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, date.Location())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("time of day must be a string: %w", err)
	}

	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*t = TimeOfDay(v)
	case nil:
		*t = 0
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}

	return nil
}

// TimeSlot is a bookable window on a single calendar day. Slots are value
// objects: equal slots describe the same window and overlap is decided on
// half-open [Start, End) intervals.
type TimeSlot struct {
	Date  time.Time `json:"date"`
	Start TimeOfDay `json:"start_time"`
	End   TimeOfDay `json:"end_time"`
}

// NewTimeSlot builds a slot of the given duration starting at start.
func NewTimeSlot(date time.Time, start TimeOfDay, durationMinutes int) TimeSlot {
	return TimeSlot{
		Date:  Midnight(date),
		Start: start,
		End:   start + TimeOfDay(durationMinutes),
	}
}

// DurationMinutes returns the slot length in minutes.
func (s TimeSlot) DurationMinutes() int {
	return int(s.End - s.Start)
}

// Overlaps reports whether two slots on the same day share any time.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if !SameDay(s.Date, other.Date) {
		return false
	}

	return s.Start < other.End && other.Start < s.End
}

// StartsAt returns the absolute start instant of the slot.
func (s TimeSlot) StartsAt() time.Time {
	return s.Start.At(s.Date)
}

// EndsAt returns the absolute end instant of the slot.
func (s TimeSlot) EndsAt() time.Time {
	return s.End.At(s.Date)
}

// Midnight truncates a timestamp to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
