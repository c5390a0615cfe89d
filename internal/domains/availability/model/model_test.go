package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agenda/internal/domains/availability/model"
	gModel "agenda/shared/model"
)

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name        string
		windowStart gModel.TimeOfDay
		windowEnd   gModel.TimeOfDay
		step        int
		duration    int
		wantStarts  []string
	}{
		{
			name:        "hour long service on half hour grid",
			windowStart: 9 * 60,
			windowEnd:   12 * 60,
			step:        30,
			duration:    60,
			wantStarts:  []string{"09:00", "09:30", "10:00", "10:30", "11:00"},
		},
		{
			name:        "slot duration equals window",
			windowStart: 9 * 60,
			windowEnd:   10 * 60,
			step:        30,
			duration:    60,
			wantStarts:  []string{"09:00"},
		},
		{
			name:        "service longer than window",
			windowStart: 9 * 60,
			windowEnd:   10 * 60,
			step:        30,
			duration:    90,
			wantStarts:  nil,
		},
		{
			name:        "inverted window",
			windowStart: 12 * 60,
			windowEnd:   9 * 60,
			step:        30,
			duration:    30,
			wantStarts:  nil,
		},
		{
			name:        "zero step",
			windowStart: 9 * 60,
			windowEnd:   12 * 60,
			step:        0,
			duration:    30,
			wantStarts:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Candidates(monday, tt.windowStart, tt.windowEnd, tt.step, tt.duration)

			starts := make([]string, 0, len(got))
			for _, slot := range got {
				starts = append(starts, slot.Start.String())
				assert.Equal(t, tt.duration, slot.DurationMinutes())
			}

			if tt.wantStarts == nil {
				assert.Empty(t, got)

				return
			}

			assert.Equal(t, tt.wantStarts, starts)
		})
	}
}

func TestRemoveOverlapping(t *testing.T) {
	candidates := model.Candidates(monday, 9*60, 12*60, 30, 30)
	assert.Len(t, candidates, 6)

	busy := []gModel.TimeSlot{
		gModel.NewTimeSlot(monday, 10*60, 60),
	}

	got := model.RemoveOverlapping(candidates, busy)

	starts := make([]string, 0, len(got))
	for _, slot := range got {
		starts = append(starts, slot.Start.String())
	}

	assert.Equal(t, []string{"09:00", "09:30", "11:00", "11:30"}, starts)
}

func TestRemoveOverlapping_NoBusySlots(t *testing.T) {
	candidates := model.Candidates(monday, 9*60, 10*60, 30, 30)

	got := model.RemoveOverlapping(candidates, nil)

	assert.Equal(t, candidates, got)
}

func TestRemoveOverlapping_BusyOnAnotherDay(t *testing.T) {
	candidates := model.Candidates(monday, 9*60, 10*60, 30, 30)
	busy := []gModel.TimeSlot{
		gModel.NewTimeSlot(monday.AddDate(0, 0, 1), 9*60, 120),
	}

	got := model.RemoveOverlapping(candidates, busy)

	assert.Len(t, got, 2)
}

func TestRemovePast(t *testing.T) {
	candidates := model.Candidates(monday, 9*60, 12*60, 30, 30)

	t.Run("mid morning cutoff", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 10, 15, 0, 0, time.UTC)

		got := model.RemovePast(candidates, now)

		starts := make([]string, 0, len(got))
		for _, slot := range got {
			starts = append(starts, slot.Start.String())
		}

		assert.Equal(t, []string{"10:30", "11:00", "11:30"}, starts)
	})

	t.Run("other days unaffected", func(t *testing.T) {
		now := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)

		got := model.RemovePast(candidates, now)

		assert.Len(t, got, len(candidates))
	})

	t.Run("slot starting exactly now is past", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

		got := model.RemovePast(candidates, now)

		assert.Equal(t, "09:30", got[0].Start.String())
	})
}
