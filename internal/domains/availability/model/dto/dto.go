package dto

import (
	"agenda/shared/constant"
	gModel "agenda/shared/model"
)

type SlotResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

func NewSlotResponse(slot gModel.TimeSlot) SlotResponse {
	return SlotResponse{
		Date:            slot.Date.Format(constant.DateOnlyFormat),
		StartTime:       slot.Start.String(),
		EndTime:         slot.End.String(),
		DurationMinutes: slot.DurationMinutes(),
	}
}

type GetSlotsResponse struct {
	StaffID string         `json:"staff_id"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}
