package models

import (
	"time"
)

// Order status steps form a fixed 1..10 progress scale.
const (
	StatusStepMin = 1
	StatusStepMax = 10
)

// Order records a placed order together with the attribution resolved at
// creation time. UserID and PartnerID are weak references: they are filled
// from the phone/promo lookups when the order is created and never
// corrected afterwards.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	PartnerID   *uint     `gorm:"index" json:"partner_id"`
	PromoCode   *string   `json:"promo_code"`
	StatusStep  int       `gorm:"default:1" json:"status_step"`
	CreatedAt   time.Time `json:"created_at"`
}
