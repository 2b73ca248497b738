package models

// User represents a registered client or referral partner.
// The phone number is the natural login key and is stored digits-only.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Phone        string  `gorm:"uniqueIndex" json:"phone"`
	PasswordHash string  `json:"-"`
	PromoCode    *string `gorm:"uniqueIndex" json:"promo_code"`
	IsPartner    bool    `gorm:"default:false" json:"is_partner"`
	Orders       []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}
