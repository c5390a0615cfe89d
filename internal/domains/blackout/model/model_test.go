package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agenda/internal/domains/blackout/model"
	gModel "agenda/shared/model"
)

func timePtr(t gModel.TimeOfDay) *gModel.TimeOfDay { return &t }

func strPtr(s string) *string { return &s }

func TestCovers(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		period  model.BlackoutPeriod
		date    time.Time
		time    *gModel.TimeOfDay
		staffID *string
		want    bool
	}{
		{
			name:   "tenant wide full day inside range",
			period: model.BlackoutPeriod{StartDate: start, EndDate: end},
			date:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "date before range",
			period: model.BlackoutPeriod{StartDate: start, EndDate: end},
			date:   time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "date after range",
			period: model.BlackoutPeriod{StartDate: start, EndDate: end},
			date:   time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "range boundaries are inclusive",
			period: model.BlackoutPeriod{StartDate: start, EndDate: end},
			date:   end,
			want:   true,
		},
		{
			name: "partial day blocks matching time",
			period: model.BlackoutPeriod{
				StartDate: start,
				EndDate:   start,
				StartTime: timePtr(12 * 60),
				EndTime:   timePtr(14 * 60),
			},
			date: start,
			time: timePtr(13 * 60),
			want: true,
		},
		{
			name: "partial day spares other times",
			period: model.BlackoutPeriod{
				StartDate: start,
				EndDate:   start,
				StartTime: timePtr(12 * 60),
				EndTime:   timePtr(14 * 60),
			},
			date: start,
			time: timePtr(15 * 60),
			want: false,
		},
		{
			name: "partial day end is exclusive",
			period: model.BlackoutPeriod{
				StartDate: start,
				EndDate:   start,
				StartTime: timePtr(12 * 60),
				EndTime:   timePtr(14 * 60),
			},
			date: start,
			time: timePtr(14 * 60),
			want: false,
		},
		{
			name: "whole day query against partial day period",
			period: model.BlackoutPeriod{
				StartDate: start,
				EndDate:   start,
				StartTime: timePtr(12 * 60),
				EndTime:   timePtr(14 * 60),
			},
			date: start,
			want: true,
		},
		{
			name:    "staff scoped period matches that staff",
			period:  model.BlackoutPeriod{StaffID: strPtr("staff-1"), StartDate: start, EndDate: end},
			date:    start,
			staffID: strPtr("staff-1"),
			want:    true,
		},
		{
			name:    "staff scoped period spares other staff",
			period:  model.BlackoutPeriod{StaffID: strPtr("staff-1"), StartDate: start, EndDate: end},
			date:    start,
			staffID: strPtr("staff-2"),
			want:    false,
		},
		{
			name:   "staff scoped period spares tenant wide query",
			period: model.BlackoutPeriod{StaffID: strPtr("staff-1"), StartDate: start, EndDate: end},
			date:   start,
			want:   false,
		},
		{
			name:    "tenant wide period covers any staff",
			period:  model.BlackoutPeriod{StartDate: start, EndDate: end},
			date:    start,
			staffID: strPtr("staff-2"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Covers(tt.date, tt.time, tt.staffID))
		})
	}
}
