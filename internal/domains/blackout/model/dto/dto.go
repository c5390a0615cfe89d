package dto

import (
	"time"

	"github.com/google/uuid"

	"agenda/internal/domains/blackout/model"
	"agenda/shared/constant"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

type CreateBlackoutRequest struct {
	StaffID   *string `json:"staff_id"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	StartTime *string `json:"start_time" validate:"omitempty,timeofday"`
	EndTime   *string `json:"end_time" validate:"omitempty,timeofday"`
	Kind      string  `json:"kind" validate:"required,oneof=VACATION HOLIDAY EMERGENCY OTHER"`
	Reason    string  `json:"reason" validate:"max=500"`
}

func (r CreateBlackoutRequest) ToModel(tenantID, actor string, now time.Time) (model.BlackoutPeriod, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, r.StartDate)
	if err != nil {
		return model.BlackoutPeriod{}, err
	}

	endDate, err := timezone.Parse(constant.DateOnlyFormat, r.EndDate)
	if err != nil {
		return model.BlackoutPeriod{}, err
	}

	period := model.BlackoutPeriod{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		StaffID:   r.StaffID,
		StartDate: startDate,
		EndDate:   endDate,
		Kind:      r.Kind,
		Reason:    r.Reason,
		Metadata:  gModel.NewMetadata(now, actor),
	}

	if r.StartTime != nil && r.EndTime != nil {
		start, err := gModel.ParseTimeOfDay(*r.StartTime)
		if err != nil {
			return model.BlackoutPeriod{}, err
		}

		end, err := gModel.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return model.BlackoutPeriod{}, err
		}

		period.StartTime = &start
		period.EndTime = &end
	}

	return period, nil
}

type BlackoutResponse struct {
	ID        string  `json:"id"`
	StaffID   *string `json:"staff_id,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Kind      string  `json:"kind"`
	Reason    string  `json:"reason"`
}

func (r *BlackoutResponse) FromModel(m model.BlackoutPeriod) {
	r.ID = m.ID
	r.StaffID = m.StaffID
	r.StartDate = m.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = m.EndDate.Format(constant.DateOnlyFormat)
	r.Kind = m.Kind
	r.Reason = m.Reason

	if m.StartTime != nil {
		s := m.StartTime.String()
		r.StartTime = &s
	}

	if m.EndTime != nil {
		e := m.EndTime.String()
		r.EndTime = &e
	}
}

type ListBlackoutsResponse struct {
	Items []BlackoutResponse `json:"items"`
}
