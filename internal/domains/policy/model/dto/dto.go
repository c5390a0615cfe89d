package dto

import "agenda/internal/domains/policy/model"

type UpdatePolicyRequest struct {
	Enabled        bool   `json:"enabled"`
	MinNoticeHours int    `json:"min_notice_hours" validate:"gte=0,lte=168"`
	MaxPerMonth    int    `json:"max_per_month" validate:"gte=1,lte=100"`
	BlockOnExceed  bool   `json:"block_on_exceed"`
	BlockDays      int    `json:"block_days" validate:"gte=1,lte=365"`
	BlockMessage   string `json:"block_message" validate:"max=500"`
}

type PolicyResponse struct {
	Enabled        bool   `json:"enabled"`
	MinNoticeHours int    `json:"min_notice_hours"`
	MaxPerMonth    int    `json:"max_per_month"`
	BlockOnExceed  bool   `json:"block_on_exceed"`
	BlockDays      int    `json:"block_days"`
	BlockMessage   string `json:"block_message"`
}

func (r *PolicyResponse) FromModel(m model.CancellationPolicy) {
	r.Enabled = m.Enabled
	r.MinNoticeHours = m.MinNoticeHours
	r.MaxPerMonth = m.MaxPerMonth
	r.BlockOnExceed = m.BlockOnExceed
	r.BlockDays = m.BlockDays
	r.BlockMessage = m.BlockMessage
}
