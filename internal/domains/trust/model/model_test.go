package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	poModel "agenda/internal/domains/policy/model"
	"agenda/internal/domains/trust/model"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func defaultPolicy() poModel.CancellationPolicy {
	return poModel.CancellationPolicy{
		Enabled:        true,
		MinNoticeHours: 24,
		MaxPerMonth:    3,
		BlockOnExceed:  true,
		BlockDays:      30,
		BlockMessage:   "too many late cancellations",
	}
}

func TestApplyCancellation_BlocksAtThreshold(t *testing.T) {
	rec := model.ClientTrustRecord{
		TenantID:    "tenant-1",
		ClientEmail: "client@example.com",
		Period:      now.Format(model.PeriodFormat),
	}

	policy := defaultPolicy()

	rec, justBlocked, remaining := model.ApplyCancellation(rec, policy, now)
	assert.False(t, justBlocked)
	assert.Equal(t, 2, remaining)

	rec, justBlocked, remaining = model.ApplyCancellation(rec, policy, now)
	assert.False(t, justBlocked)
	assert.Equal(t, 1, remaining)

	rec, justBlocked, remaining = model.ApplyCancellation(rec, policy, now)
	assert.True(t, justBlocked)
	assert.Equal(t, 0, remaining)
	assert.True(t, rec.Blocked)
	assert.Equal(t, 3, rec.CancellationsThisPeriod)
	assert.Equal(t, 3, rec.TotalCancellations)

	if assert.NotNil(t, rec.BlockedUntil) {
		assert.Equal(t, now.AddDate(0, 0, 30), *rec.BlockedUntil)
	}

	if assert.NotNil(t, rec.BlockReason) {
		assert.Equal(t, "too many late cancellations", *rec.BlockReason)
	}
}

func TestApplyCancellation_AlreadyBlocked(t *testing.T) {
	until := now.AddDate(0, 0, 10)
	rec := model.ClientTrustRecord{
		Period:                  now.Format(model.PeriodFormat),
		CancellationsThisPeriod: 4,
		TotalCancellations:      4,
		Blocked:                 true,
		BlockedUntil:            &until,
	}

	rec, justBlocked, remaining := model.ApplyCancellation(rec, defaultPolicy(), now)

	assert.False(t, justBlocked)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, 5, rec.CancellationsThisPeriod)

	// The original block window is kept as is.
	assert.Equal(t, until, *rec.BlockedUntil)
}

func TestApplyCancellation_PolicyDisabled(t *testing.T) {
	policy := defaultPolicy()
	policy.Enabled = false

	rec := model.ClientTrustRecord{Period: now.Format(model.PeriodFormat), CancellationsThisPeriod: 10}

	rec, justBlocked, _ := model.ApplyCancellation(rec, policy, now)

	assert.False(t, justBlocked)
	assert.False(t, rec.Blocked)
}

func TestApplyCancellation_RollsStalePeriod(t *testing.T) {
	rec := model.ClientTrustRecord{
		Period:                  "2025-02",
		CancellationsThisPeriod: 3,
		TotalCancellations:      7,
	}

	rec, justBlocked, remaining := model.ApplyCancellation(rec, defaultPolicy(), now)

	assert.False(t, justBlocked)
	assert.Equal(t, "2025-03", rec.Period)
	assert.Equal(t, 1, rec.CancellationsThisPeriod)
	assert.Equal(t, 8, rec.TotalCancellations)
	assert.Equal(t, 2, remaining)
}

func TestMaybeUnblock(t *testing.T) {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	reason := "blocked"

	tests := []struct {
		name        string
		rec         model.ClientTrustRecord
		wantChanged bool
		wantBlocked bool
	}{
		{
			name:        "elapsed block is cleared",
			rec:         model.ClientTrustRecord{Blocked: true, BlockedUntil: &past, BlockReason: &reason},
			wantChanged: true,
			wantBlocked: false,
		},
		{
			name:        "active block stays",
			rec:         model.ClientTrustRecord{Blocked: true, BlockedUntil: &future, BlockReason: &reason},
			wantChanged: false,
			wantBlocked: true,
		},
		{
			name:        "unblocked record untouched",
			rec:         model.ClientTrustRecord{},
			wantChanged: false,
			wantBlocked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := model.MaybeUnblock(tt.rec, now)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantBlocked, got.Blocked)

			if !got.Blocked {
				assert.Nil(t, got.BlockedUntil)
				assert.Nil(t, got.BlockReason)
			}
		})
	}
}

func TestRollPeriod_Idempotent(t *testing.T) {
	rec := model.ClientTrustRecord{Period: "2025-02", CancellationsThisPeriod: 2}

	rec, rolled := model.RollPeriod(rec, now)
	assert.True(t, rolled)
	assert.Equal(t, "2025-03", rec.Period)
	assert.Zero(t, rec.CancellationsThisPeriod)

	rec.CancellationsThisPeriod = 1

	rec, rolled = model.RollPeriod(rec, now)
	assert.False(t, rolled)
	assert.Equal(t, 1, rec.CancellationsThisPeriod)
}
