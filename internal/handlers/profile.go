package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/madera/internal/models"
)

// ProfileHandler manages extended user attributes.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile returns the profile of the given user together with
// denormalized identity fields.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "profile not found")
		}
		return err
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user_id":    profile.UserID,
			"name":       user.Name,
			"phone":      user.Phone,
			"promo_code": user.PromoCode,
			"is_partner": user.IsPartner,
			"city":       profile.City,
			"address":    profile.Address,
			"landmark":   profile.Landmark,
			"email":      profile.Email,
			"style":      profile.Style,
			"comment":    profile.Comment,
			"updated_at": profile.UpdatedAt,
		},
	})
}

type upsertProfileRequest struct {
	City     string `json:"city"`
	Address  string `json:"address"`
	Landmark string `json:"landmark"`
	Email    string `json:"email"`
	Style    string `json:"style"`
	Comment  string `json:"comment"`
}

// UpsertProfile creates or overwrites the profile row of the given user.
// The whole row is replaced: fields absent from the request are cleared.
func (h *ProfileHandler) UpsertProfile(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	var profile models.Profile
	err = h.db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.Profile{UserID: user.ID}
	case err != nil:
		return err
	}

	profile.City = req.City
	profile.Address = req.Address
	profile.Landmark = req.Landmark
	profile.Email = req.Email
	profile.Style = req.Style
	profile.Comment = req.Comment
	profile.UpdatedAt = time.Now()

	if err := h.db.Save(&profile).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}
