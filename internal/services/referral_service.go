package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/madera/internal/models"
	"github.com/example/madera/internal/utils"
)

// promoPrefix is the fixed prefix of partner promo codes ("MD0001", ...).
const promoPrefix = "MD"

// ErrCodeAlreadyAssigned is returned when a partner already owns a code.
var ErrCodeAlreadyAssigned = errors.New("promo code already assigned")

// ReferralService maps promo codes to the partners who own them.
type ReferralService struct {
	db *gorm.DB
}

// NewReferralService constructs ReferralService.
func NewReferralService(db *gorm.DB) *ReferralService {
	return &ReferralService{db: db}
}

// AssignCode derives a promo code from the user ID and persists it on the
// user row, marking the user as a partner. Codes are assigned once; calling
// again for the same user is an error.
func (s *ReferralService) AssignCode(userID uint) (string, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return "", err
	}

	if user.PromoCode != nil {
		return "", ErrCodeAlreadyAssigned
	}

	code := fmt.Sprintf("%s%04d", promoPrefix, userID)
	updates := map[string]interface{}{
		"promo_code": code,
		"is_partner": true,
	}
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return "", err
	}

	return code, nil
}

// Resolve looks up the partner owning the given promo code. Matching is
// case-insensitive and ignores surrounding whitespace. A code nobody owns
// resolves to (0, false), never an error.
func (s *ReferralService) Resolve(code string) (uint, bool) {
	normalized := utils.NormalizePromoCode(code)
	if normalized == "" {
		return 0, false
	}

	var user models.User
	if err := s.db.First(&user, "promo_code = ?", normalized).Error; err != nil {
		return 0, false
	}

	return user.ID, true
}
