package model

import (
	gModel "agenda/shared/model"
)

const (
	TableName  = "tenant_policies"
	EntityName = "tenant policy"

	FieldTenantID       = "tenant_id"
	FieldEnabled        = "enabled"
	FieldMinNoticeHours = "min_notice_hours"
	FieldMaxPerMonth    = "max_per_month"
	FieldBlockOnExceed  = "block_on_exceed"
	FieldBlockDays      = "block_days"
	FieldBlockMessage   = "block_message"
)

// CancellationPolicy is the tenant-configurable cancellation ruleset. The
// scheduling core consumes it as read-only configuration.
type CancellationPolicy struct {
	TenantID       string `db:"tenant_id"`
	Enabled        bool   `db:"enabled"`
	MinNoticeHours int    `db:"min_notice_hours"`
	MaxPerMonth    int    `db:"max_per_month"`
	BlockOnExceed  bool   `db:"block_on_exceed"`
	BlockDays      int    `db:"block_days"`
	BlockMessage   string `db:"block_message"`
	gModel.Metadata
}
