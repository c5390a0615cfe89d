package model

import (
	gModel "agenda/shared/model"
)

const (
	TableName  = "working_hours"
	EntityName = "working hours"

	FieldID                  = "id"
	FieldTenantID            = "tenant_id"
	FieldStaffID             = "staff_id"
	FieldWeekday             = "weekday"
	FieldStartTime           = "start_time"
	FieldEndTime             = "end_time"
	FieldSlotDurationMinutes = "slot_duration_minutes"
	FieldActive              = "active"
)

// WorkingHours is one staff member's schedule for a single weekday. Rows are
// only ever edited or toggled; an inactive row means the staff member does not
// work that day regardless of the other fields.
type WorkingHours struct {
	ID                  string           `db:"id"`
	TenantID            string           `db:"tenant_id"`
	StaffID             string           `db:"staff_id"`
	Weekday             int              `db:"weekday"`
	StartTime           gModel.TimeOfDay `db:"start_time"`
	EndTime             gModel.TimeOfDay `db:"end_time"`
	SlotDurationMinutes int              `db:"slot_duration_minutes"`
	Active              bool             `db:"active"`
	gModel.Metadata
}

// Window reports whether the row describes a non-empty working window.
func (w WorkingHours) Window() bool {
	return w.Active && w.EndTime > w.StartTime && w.SlotDurationMinutes > 0
}
