package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerRequest is an inbound partnership application from the site form.
type PartnerRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequestID   uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"request_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Activity    string    `json:"activity"`
	ProfileLink string    `json:"profile_link"`
	About       string    `json:"about"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate assigns a public reference ID for new applications.
func (r *PartnerRequest) BeforeCreate(tx *gorm.DB) error {
	if r.RequestID == uuid.Nil {
		r.RequestID = uuid.New()
	}
	return nil
}

// MeasureRequest is a lead from the measurement/estimate form.
type MeasureRequest struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RequestID     uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"request_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Landmark      string    `json:"landmark"`
	ContactMethod string    `json:"contact_method"`
	Category      string    `json:"category"`
	Length        string    `json:"length"`
	Tariff        string    `json:"tariff"`
	PromoCode     string    `json:"promo_code"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate assigns a public reference ID for new leads.
func (m *MeasureRequest) BeforeCreate(tx *gorm.DB) error {
	if m.RequestID == uuid.Nil {
		m.RequestID = uuid.New()
	}
	return nil
}
