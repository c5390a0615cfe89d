package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"agenda/internal/domains/waitlist/model"
	"agenda/shared/constant"
	"agenda/shared/failure"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

type JoinWaitlistRequest struct {
	StaffID           string  `json:"staff_id" validate:"required"`
	ServiceID         string  `json:"service_id" validate:"required"`
	ClientEmail       string  `json:"client_email" validate:"required,email"`
	PreferredDate     *string `json:"preferred_date"`
	PreferredWeekdays []int   `json:"preferred_weekdays" validate:"dive,weekday"`
	PreferredStart    string  `json:"preferred_start_time" validate:"required,timeofday"`
	PreferredEnd      string  `json:"preferred_end_time" validate:"required,timeofday"`
}

func (r JoinWaitlistRequest) ToModel(tenantID string, now time.Time) (model.WaitlistEntry, error) {
	start, err := gModel.ParseTimeOfDay(r.PreferredStart)
	if err != nil {
		return model.WaitlistEntry{}, failure.ValidationError("invalid preferred start time")
	}

	end, err := gModel.ParseTimeOfDay(r.PreferredEnd)
	if err != nil {
		return model.WaitlistEntry{}, failure.ValidationError("invalid preferred end time")
	}

	if end <= start {
		return model.WaitlistEntry{}, failure.ValidationError("preferred end time must be after preferred start time")
	}

	if r.PreferredDate == nil && len(r.PreferredWeekdays) == 0 {
		return model.WaitlistEntry{}, failure.ValidationError("either preferred date or preferred weekdays is required")
	}

	entry := model.WaitlistEntry{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		StaffID:        r.StaffID,
		ServiceID:      r.ServiceID,
		ClientEmail:    r.ClientEmail,
		PreferredStart: start,
		PreferredEnd:   end,
		State:          model.StateActive,
		Metadata:       gModel.NewMetadata(now, r.ClientEmail),
	}

	if r.PreferredDate != nil {
		date, err := timezone.Parse(constant.DateOnlyFormat, *r.PreferredDate)
		if err != nil {
			return model.WaitlistEntry{}, failure.ValidationError("invalid preferred date")
		}

		entry.PreferredDate = &date
	}

	entry.PreferredWeekdays = make(pq.Int64Array, 0, len(r.PreferredWeekdays))
	for _, weekday := range r.PreferredWeekdays {
		entry.PreferredWeekdays = append(entry.PreferredWeekdays, int64(weekday))
	}

	return entry, nil
}

type WaitlistEntryResponse struct {
	ID                string  `json:"id"`
	StaffID           string  `json:"staff_id"`
	ServiceID         string  `json:"service_id"`
	ClientEmail       string  `json:"client_email"`
	PreferredDate     *string `json:"preferred_date,omitempty"`
	PreferredWeekdays []int   `json:"preferred_weekdays,omitempty"`
	PreferredStart    string  `json:"preferred_start_time"`
	PreferredEnd      string  `json:"preferred_end_time"`
	State             string  `json:"state"`
	QueuePosition     int     `json:"queue_position,omitempty"`
	OfferedDate       *string `json:"offered_date,omitempty"`
	OfferedStart      *string `json:"offered_start_time,omitempty"`
	TokenExpiresAt    *string `json:"token_expires_at,omitempty"`
	ReservationID     *string `json:"reservation_id,omitempty"`
}

func (r *WaitlistEntryResponse) FromModel(m model.WaitlistEntry) {
	r.ID = m.ID
	r.StaffID = m.StaffID
	r.ServiceID = m.ServiceID
	r.ClientEmail = m.ClientEmail
	r.PreferredStart = m.PreferredStart.String()
	r.PreferredEnd = m.PreferredEnd.String()
	r.State = string(m.State)
	r.ReservationID = m.ReservationID

	if m.PreferredDate != nil {
		date := m.PreferredDate.Format(constant.DateOnlyFormat)
		r.PreferredDate = &date
	}

	r.PreferredWeekdays = make([]int, 0, len(m.PreferredWeekdays))
	for _, weekday := range m.PreferredWeekdays {
		r.PreferredWeekdays = append(r.PreferredWeekdays, int(weekday))
	}

	if m.OfferedDate != nil {
		date := m.OfferedDate.Format(constant.DateOnlyFormat)
		r.OfferedDate = &date
	}

	if m.OfferedStart != nil {
		start := m.OfferedStart.String()
		r.OfferedStart = &start
	}

	if m.TokenExpiresAt != nil {
		expires := timezone.Format(*m.TokenExpiresAt, time.RFC3339)
		r.TokenExpiresAt = &expires
	}
}
