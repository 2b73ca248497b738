package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/madera/internal/middleware"
	"github.com/example/madera/internal/models"
	"github.com/example/madera/internal/services"
	"github.com/example/madera/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	referral *services.ReferralService
	telegram *services.TelegramService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, referral *services.ReferralService, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{db: db, referral: referral, telegram: telegram}
}

type createOrderRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	PromoCode   string `json:"promo_code"`
}

// CreateOrder places an order on behalf of a site visitor. Attribution is
// best effort: the client phone and the promo code are resolved at creation
// time only, and an unknown phone or code leaves the reference empty.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	phone := utils.NormalizePhone(req.ClientPhone)
	if req.ClientName == "" || phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "client name and phone are required")
	}

	order := models.Order{
		ClientName:  req.ClientName,
		ClientPhone: phone,
		StatusStep:  models.StatusStepMin,
	}

	var user models.User
	if err := h.db.Where("phone = ?", phone).First(&user).Error; err == nil {
		order.UserID = &user.ID
	}

	if code := utils.NormalizePromoCode(req.PromoCode); code != "" {
		order.PromoCode = &code
		if partnerID, ok := h.referral.Resolve(code); ok {
			order.PartnerID = &partnerID
		}
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	go func(order models.Order) {
		if err := h.telegram.NotifyNewOrder(order); err != nil {
			log.Printf("[Order] Telegram notification failed for order %d: %v", order.ID, err)
		}
	}(order)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

// ListMyOrders returns orders attributed to the authenticated user,
// newest first.
func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Where("user_id = ?", userID).Model(&models.Order{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type updateStatusRequest struct {
	StatusStep int `json:"status_step"`
}

// UpdateStatus overwrites the status step of an order. Any step within the
// 1..10 scale may follow any other; values outside the scale are rejected
// and leave the stored step unchanged.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.StatusStep < models.StatusStepMin || req.StatusStep > models.StatusStepMax {
		return fiber.NewError(fiber.StatusBadRequest, "status step must be between 1 and 10")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	order.StatusStep = req.StatusStep
	if err := h.db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("status_step", req.StatusStep).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// PartnerStats returns orders referred by the authenticated partner,
// newest first, together with their total count.
func (h *OrderHandler) PartnerStats(c *fiber.Ctx) error {
	partnerID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var orders []models.Order
	if err := h.db.Where("partner_id = ?", partnerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"total":   len(orders),
		"orders":  orders,
	})
}
