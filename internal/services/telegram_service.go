package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/madera/internal/models"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// NotifyNewOrder sends a notification about a freshly placed order to the
// admin chat.
func (s *TelegramService) NotifyNewOrder(order models.Order) error {
	if s.adminChatID == "" {
		return nil
	}

	promo := "нет"
	if order.PromoCode != nil && *order.PromoCode != "" {
		promo = *order.PromoCode
	}

	attribution := "не найден"
	if order.PartnerID != nil {
		attribution = fmt.Sprintf("партнёр #%d", *order.PartnerID)
	}

	message := fmt.Sprintf(`<b>🛒 Новый заказ #%d</b>
<b>🧑‍💼 Имя:</b> %s
<b>📞 Телефон:</b> %s
<b>🎟 Промокод:</b> %s
<b>🤝 Партнёр:</b> %s`,
		order.ID,
		order.ClientName,
		order.ClientPhone,
		promo,
		attribution,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyMeasureRequest sends a measurement/estimate lead to the admin chat.
func (s *TelegramService) NotifyMeasureRequest(req models.MeasureRequest) error {
	if s.adminChatID == "" {
		return nil
	}

	orDash := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}

	promo := req.PromoCode
	if promo == "" {
		promo = "нет"
	}

	message := fmt.Sprintf(`<b>🟧 Новая заявка на замер и расчёт</b>
<b>🧑‍💼 Имя:</b> %s
<b>📞 Телефон:</b> %s
<b>📍 Адрес:</b> %s
<b>🧭 Ориентир:</b> %s
<b>💬 Способ связи:</b> %s
<b>🪑 Категория мебели:</b> %s
<b>📏 Длина проекта:</b> %s
<b>💰 Тариф:</b> %s
<b>🎟 Промокод:</b> %s
<b>📝 Описание:</b> %s`,
		req.Name,
		req.Phone,
		orDash(req.Address),
		orDash(req.Landmark),
		orDash(req.ContactMethod),
		orDash(req.Category),
		orDash(req.Length),
		orDash(req.Tariff),
		promo,
		orDash(req.Description),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
