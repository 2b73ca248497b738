package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/madera/internal/models"
	"github.com/example/madera/internal/services"
)

// PartnerHandler manages inbound partnership applications.
type PartnerHandler struct {
	db   *gorm.DB
	mail *services.MailService
}

// NewPartnerHandler constructs PartnerHandler.
func NewPartnerHandler(db *gorm.DB, mail *services.MailService) *PartnerHandler {
	return &PartnerHandler{db: db, mail: mail}
}

type partnerRequestBody struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Activity    string `json:"activity"`
	ProfileLink string `json:"profile_link"`
	About       string `json:"about"`
}

// SubmitRequest stores a partnership application and relays it to the
// business inbox. Mail delivery is fire-and-forget.
func (h *PartnerHandler) SubmitRequest(c *fiber.Ctx) error {
	var req partnerRequestBody
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and phone are required")
	}

	request := models.PartnerRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		Activity:    req.Activity,
		ProfileLink: req.ProfileLink,
		About:       req.About,
	}

	if err := h.db.Create(&request).Error; err != nil {
		return err
	}

	go func(request models.PartnerRequest) {
		if err := h.mail.SendPartnerRequest(request); err != nil {
			log.Printf("[Partner] Mail relay failed for request %s: %v", request.RequestID, err)
		}
	}(request)

	return c.JSON(fiber.Map{
		"success":    true,
		"request_id": request.RequestID,
	})
}

// ListRequests returns all partnership applications, newest first.
func (h *PartnerHandler) ListRequests(c *fiber.Ctx) error {
	var requests []models.PartnerRequest
	if err := h.db.Order("id desc").Find(&requests).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requests,
	})
}
