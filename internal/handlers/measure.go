package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/madera/internal/models"
	"github.com/example/madera/internal/services"
	"github.com/example/madera/internal/utils"
)

// MeasureHandler accepts measurement/estimate leads from the site form.
type MeasureHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewMeasureHandler constructs MeasureHandler.
func NewMeasureHandler(db *gorm.DB, telegram *services.TelegramService) *MeasureHandler {
	return &MeasureHandler{db: db, telegram: telegram}
}

type measureRequestBody struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Landmark      string `json:"landmark"`
	ContactMethod string `json:"contact_method"`
	Category      string `json:"category"`
	Length        string `json:"length"`
	Tariff        string `json:"tariff"`
	PromoCode     string `json:"promo_code"`
	Description   string `json:"description"`
}

// Submit stores a measurement lead and notifies the admin chat.
// Notification delivery is fire-and-forget.
func (h *MeasureHandler) Submit(c *fiber.Ctx) error {
	var req measureRequestBody
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and phone are required")
	}

	lead := models.MeasureRequest{
		Name:          req.Name,
		Phone:         utils.NormalizePhone(req.Phone),
		Address:       req.Address,
		Landmark:      req.Landmark,
		ContactMethod: req.ContactMethod,
		Category:      req.Category,
		Length:        req.Length,
		Tariff:        req.Tariff,
		PromoCode:     utils.NormalizePromoCode(req.PromoCode),
		Description:   req.Description,
	}

	if err := h.db.Create(&lead).Error; err != nil {
		return err
	}

	go func(lead models.MeasureRequest) {
		if err := h.telegram.NotifyMeasureRequest(lead); err != nil {
			log.Printf("[Measure] Telegram notification failed for lead %s: %v", lead.RequestID, err)
		}
	}(lead)

	return c.JSON(fiber.Map{
		"success":    true,
		"request_id": lead.RequestID,
	})
}
