package model

import (
	"time"

	gModel "agenda/shared/model"
)

// Candidates walks a working window from windowStart in increments of
// stepMinutes, emitting one slot of serviceDurationMinutes per step. Slots
// that would run past windowEnd are dropped, so a service longer than the
// window yields nothing.
func Candidates(date time.Time, windowStart, windowEnd gModel.TimeOfDay, stepMinutes, serviceDurationMinutes int) []gModel.TimeSlot {
	if stepMinutes <= 0 || serviceDurationMinutes <= 0 || windowEnd <= windowStart {
		return nil
	}

	var slots []gModel.TimeSlot

	for start := windowStart; start+gModel.TimeOfDay(serviceDurationMinutes) <= windowEnd; start += gModel.TimeOfDay(stepMinutes) {
		slots = append(slots, gModel.NewTimeSlot(date, start, serviceDurationMinutes))
	}

	return slots
}

// RemoveOverlapping filters out candidates whose span overlaps any of the
// given busy slots.
func RemoveOverlapping(candidates, busy []gModel.TimeSlot) []gModel.TimeSlot {
	if len(busy) == 0 {
		return candidates
	}

	kept := make([]gModel.TimeSlot, 0, len(candidates))

outer:
	for _, candidate := range candidates {
		for _, taken := range busy {
			if candidate.Overlaps(taken) {
				continue outer
			}
		}

		kept = append(kept, candidate)
	}

	return kept
}

// RemovePast filters out candidates whose start is not after now. Candidates
// on other days are unaffected.
func RemovePast(candidates []gModel.TimeSlot, now time.Time) []gModel.TimeSlot {
	kept := make([]gModel.TimeSlot, 0, len(candidates))

	for _, candidate := range candidates {
		if !gModel.SameDay(candidate.Date, now) || candidate.StartsAt().After(now) {
			kept = append(kept, candidate)
		}
	}

	return kept
}
