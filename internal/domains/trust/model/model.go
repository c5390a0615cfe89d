package model

import (
	"time"

	"agenda/internal/domains/policy/model"
	gModel "agenda/shared/model"
)

const (
	TableName  = "client_trust_records"
	EntityName = "client trust record"

	FieldID                      = "id"
	FieldTenantID                = "tenant_id"
	FieldClientEmail             = "client_email"
	FieldPeriod                  = "period"
	FieldCancellationsThisPeriod = "cancellations_this_period"
	FieldTotalCancellations      = "total_cancellations"
	FieldBlocked                 = "blocked"
	FieldBlockedUntil            = "blocked_until"
	FieldBlockReason             = "block_reason"
)

// PeriodFormat is the calendar-month key stored on every record. Counters
// belong to exactly one period; the monthly reset zeroes rows whose period
// lags behind the current one.
const PeriodFormat = "2006-01"

// ClientTrustRecord accumulates cancellation behaviour for one client within
// one tenant. Clients without an account are tracked by email alone, so a
// later signup with the same address inherits the history.
type ClientTrustRecord struct {
	ID                      string     `db:"id"`
	TenantID                string     `db:"tenant_id"`
	ClientEmail             string     `db:"client_email"`
	Period                  string     `db:"period"`
	CancellationsThisPeriod int        `db:"cancellations_this_period"`
	TotalCancellations      int        `db:"total_cancellations"`
	Blocked                 bool       `db:"blocked"`
	BlockedUntil            *time.Time `db:"blocked_until"`
	BlockReason             *string    `db:"block_reason"`
	gModel.Metadata
}

// MaybeUnblock clears an elapsed block. It returns the possibly updated
// record and whether anything changed, so callers only persist on change.
func MaybeUnblock(rec ClientTrustRecord, now time.Time) (ClientTrustRecord, bool) {
	if !rec.Blocked || rec.BlockedUntil == nil || now.Before(*rec.BlockedUntil) {
		return rec, false
	}

	rec.Blocked = false
	rec.BlockedUntil = nil
	rec.BlockReason = nil

	return rec, true
}

// RollPeriod resets the monthly counter when the record's period key no
// longer matches the current month. Idempotent within a month.
func RollPeriod(rec ClientTrustRecord, now time.Time) (ClientTrustRecord, bool) {
	current := now.Format(PeriodFormat)
	if rec.Period == current {
		return rec, false
	}

	rec.Period = current
	rec.CancellationsThisPeriod = 0

	return rec, true
}

// ApplyCancellation increments the counters and applies a block when the
// tenant policy says the monthly threshold has been crossed. It returns the
// updated record, whether a block was applied by this call, and how many
// cancellations remain before the threshold (zero when at or past it).
func ApplyCancellation(rec ClientTrustRecord, policy model.CancellationPolicy, now time.Time) (ClientTrustRecord, bool, int) {
	rec, _ = RollPeriod(rec, now)

	rec.CancellationsThisPeriod++
	rec.TotalCancellations++

	remaining := policy.MaxPerMonth - rec.CancellationsThisPeriod
	if remaining < 0 {
		remaining = 0
	}

	justBlocked := false
	if policy.Enabled && policy.BlockOnExceed && rec.CancellationsThisPeriod >= policy.MaxPerMonth && !rec.Blocked {
		until := now.AddDate(0, 0, policy.BlockDays)
		reason := policy.BlockMessage

		rec.Blocked = true
		rec.BlockedUntil = &until
		rec.BlockReason = &reason
		justBlocked = true
	}

	return rec, justBlocked, remaining
}
