package models

import "time"

type Outcome string

const (
	OutcomeAdmitted Outcome = "ADMITTED"
	OutcomeDenied   Outcome = "DENIED"
)

// UsageRecord is one row of the append-only admission ledger. Records are
// immutable once written; counting them is the source of truth for usage.
// CredentialKey is a weak reference by key, never written for unknown keys.
type UsageRecord struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CredentialKey string    `gorm:"index:idx_usage_credential_ts,priority:1" json:"credential_key"`
	Timestamp     time.Time `gorm:"index:idx_usage_credential_ts,priority:2" json:"timestamp"`
	Endpoint      string    `json:"endpoint"`
	Outcome       Outcome   `json:"outcome"`
}
