package model

import (
	"time"

	gModel "agenda/shared/model"
)

const (
	TableName  = "blackout_periods"
	EntityName = "blackout period"

	FieldID        = "id"
	FieldTenantID  = "tenant_id"
	FieldStaffID   = "staff_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldKind      = "kind"
	FieldReason    = "reason"
)

const (
	KindVacation  = "VACATION"
	KindHoliday   = "HOLIDAY"
	KindEmergency = "EMERGENCY"
	KindOther     = "OTHER"
)

// BlackoutPeriod is an admin-declared window during which bookings are
// rejected. A nil StaffID applies the period to the whole tenant; a nil time
// window blocks the full day. Periods become immutable once they are in the
// past.
type BlackoutPeriod struct {
	ID        string            `db:"id"`
	TenantID  string            `db:"tenant_id"`
	StaffID   *string           `db:"staff_id"`
	StartDate time.Time         `db:"start_date"`
	EndDate   time.Time         `db:"end_date"`
	StartTime *gModel.TimeOfDay `db:"start_time"`
	EndTime   *gModel.TimeOfDay `db:"end_time"`
	Kind      string            `db:"kind"`
	Reason    string            `db:"reason"`
	gModel.Metadata
}

// Covers reports whether the period blocks the given date, optional time of
// day and optional staff member.
func (p BlackoutPeriod) Covers(date time.Time, timeOfDay *gModel.TimeOfDay, staffID *string) bool {
	if p.StaffID != nil {
		if staffID == nil || *p.StaffID != *staffID {
			return false
		}
	}

	day := gModel.Midnight(date)
	if day.Before(gModel.Midnight(p.StartDate)) || day.After(gModel.Midnight(p.EndDate)) {
		return false
	}

	if p.StartTime == nil || p.EndTime == nil {
		return true
	}

	if timeOfDay == nil {
		// A whole-day query against a partial-day period counts as blocked.
		return true
	}

	return *timeOfDay >= *p.StartTime && *timeOfDay < *p.EndTime
}
