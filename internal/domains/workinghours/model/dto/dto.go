package dto

import (
	"time"

	"github.com/google/uuid"

	"agenda/internal/domains/workinghours/model"
	gModel "agenda/shared/model"
)

type UpsertWorkingHoursRequest struct {
	StaffID             string `json:"staff_id" validate:"required"`
	Weekday             int    `json:"weekday" validate:"weekday"`
	StartTime           string `json:"start_time" validate:"required,timeofday"`
	EndTime             string `json:"end_time" validate:"required,timeofday"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"required,gte=5,lte=480"`
	Active              bool   `json:"active"`
}

func (r UpsertWorkingHoursRequest) ToModel(tenantID, actor string, now time.Time) (model.WorkingHours, error) {
	start, err := gModel.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return model.WorkingHours{}, err
	}

	end, err := gModel.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return model.WorkingHours{}, err
	}

	return model.WorkingHours{
		ID:                  uuid.NewString(),
		TenantID:            tenantID,
		StaffID:             r.StaffID,
		Weekday:             r.Weekday,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: r.SlotDurationMinutes,
		Active:              r.Active,
		Metadata:            gModel.NewMetadata(now, actor),
	}, nil
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type WorkingHoursResponse struct {
	StaffID             string `json:"staff_id"`
	Weekday             int    `json:"weekday"`
	StartTime           string `json:"start_time"`
	EndTime             string `json:"end_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	Active              bool   `json:"active"`
}

func (r *WorkingHoursResponse) FromModel(m model.WorkingHours) {
	r.StaffID = m.StaffID
	r.Weekday = m.Weekday
	r.StartTime = m.StartTime.String()
	r.EndTime = m.EndTime.String()
	r.SlotDurationMinutes = m.SlotDurationMinutes
	r.Active = m.Active
}

type ListWorkingHoursResponse struct {
	Items []WorkingHoursResponse `json:"items"`
}
