package dto

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"agenda/internal/domains/reservation/model"
	"agenda/shared"
	"agenda/shared/constant"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

type CreateReservationRequest struct {
	StaffID     string  `json:"staff_id" validate:"required"`
	ServiceID   string  `json:"service_id" validate:"required"`
	ClientID    *string `json:"client_id"`
	ClientEmail string  `json:"client_email" validate:"required,email"`
	Date        string  `json:"date" validate:"required"`
	StartTime   string  `json:"start_time" validate:"required,timeofday"`
	DurationMin int     `json:"duration_minutes" validate:"required,gte=5,lte=480"`
}

func (r CreateReservationRequest) Slot() (gModel.TimeSlot, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, r.Date)
	if err != nil {
		return gModel.TimeSlot{}, err
	}

	start, err := gModel.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return gModel.TimeSlot{}, err
	}

	return gModel.NewTimeSlot(date, start, r.DurationMin), nil
}

func (r CreateReservationRequest) ToModel(tenantID string, slot gModel.TimeSlot, now time.Time) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		StaffID:     r.StaffID,
		ServiceID:   r.ServiceID,
		ClientID:    r.ClientID,
		ClientEmail: r.ClientEmail,
		Date:        slot.Date,
		StartTime:   slot.Start,
		EndTime:     slot.End,
		State:       model.StateBooked,
		CancelToken: uuid.NewString(),
		Metadata:    gModel.NewMetadata(now, r.ClientEmail),
	}
}

type CancelReservationRequest struct {
	Reason      string `json:"reason" validate:"max=500"`
	CancelToken string `json:"cancel_token"`
}

type RescheduleReservationRequest struct {
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required,timeofday"`
	DurationMin int    `json:"duration_minutes" validate:"required,gte=5,lte=480"`
}

func (r RescheduleReservationRequest) Slot() (gModel.TimeSlot, error) {
	date, err := timezone.Parse(constant.DateOnlyFormat, r.Date)
	if err != nil {
		return gModel.TimeSlot{}, err
	}

	start, err := gModel.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return gModel.TimeSlot{}, err
	}

	return gModel.NewTimeSlot(date, start, r.DurationMin), nil
}

// ListReservationsFilter narrows the reservation listing. Cancelled rows are
// hidden unless include_cancelled is set or the state filter asks for them.
type ListReservationsFilter struct {
	StaffID          string
	ClientEmail      string
	State            string
	IncludeCancelled *bool
}

func (f *ListReservationsFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.StaffID = query.Get("staff_id")
	f.ClientEmail = query.Get("client_email")
	f.State = query.Get("state")
	f.IncludeCancelled = shared.ConvertStringToBool(query.Get("include_cancelled"))
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	StaffID     string  `json:"staff_id"`
	ServiceID   string  `json:"service_id"`
	ClientID    *string `json:"client_id,omitempty"`
	ClientEmail string  `json:"client_email"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	State       string  `json:"state"`
	CancelToken string  `json:"cancel_token,omitempty"`
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.StaffID = m.StaffID
	r.ServiceID = m.ServiceID
	r.ClientID = m.ClientID
	r.ClientEmail = m.ClientEmail
	r.Date = m.Date.Format(constant.DateOnlyFormat)
	r.StartTime = m.StartTime.String()
	r.EndTime = m.EndTime.String()
	r.State = string(m.State)
}

type GetReservationsResponse struct {
	Items      []ReservationResponse `json:"items"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
}
