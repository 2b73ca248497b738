package models

import (
	"time"
)

// Profile holds optional extended attributes for a user. At most one row
// per user; writes overwrite the whole row.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Landmark  string    `json:"landmark"`
	Email     string    `json:"email"`
	Style     string    `json:"style"`
	Comment   string    `json:"comment"`
	UpdatedAt time.Time `json:"updated_at"`
}
