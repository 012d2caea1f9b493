package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential is an issued identity entitling its holder to a daily quota of
// admitted requests. Credentials are created once and never mutated; Key is the
// opaque secret callers present and the identity the ledger accounts against.
type Credential struct {
	ID         uuid.UUID `gorm:"type:uuid" json:"id"`
	Key        string    `gorm:"uniqueIndex" json:"key"`
	OwnerEmail string    `gorm:"uniqueIndex" json:"owner_email"`
	Quota      int       `json:"quota"`
	CreatedAt  time.Time `json:"created_at"`
}
