package dto

import (
	"time"

	"agenda/internal/domains/trust/model"
	"agenda/shared/timezone"
)

type TrustStatusResponse struct {
	ClientEmail             string  `json:"clientEmail"`
	TenantID                string  `json:"tenantId"`
	Period                  string  `json:"period"`
	CancellationsThisPeriod int     `json:"cancellationsThisPeriod"`
	TotalCancellations      int     `json:"totalCancellations"`
	Blocked                 bool    `json:"blocked"`
	BlockedUntil            *string `json:"blockedUntil,omitempty"`
	BlockReason             *string `json:"blockReason,omitempty"`
}

func NewTrustStatusResponse(rec model.ClientTrustRecord) TrustStatusResponse {
	res := TrustStatusResponse{
		ClientEmail:             rec.ClientEmail,
		TenantID:                rec.TenantID,
		Period:                  rec.Period,
		CancellationsThisPeriod: rec.CancellationsThisPeriod,
		TotalCancellations:      rec.TotalCancellations,
		Blocked:                 rec.Blocked,
		BlockReason:             rec.BlockReason,
	}

	if rec.BlockedUntil != nil {
		until := timezone.Format(*rec.BlockedUntil, time.RFC3339)
		res.BlockedUntil = &until
	}

	return res
}
