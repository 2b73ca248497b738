package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/example/madera/internal/models"
)

// MailService relays partnership applications to the business inbox.
type MailService struct {
	host     string
	port     int
	user     string
	password string
	to       string
}

// NewMailService creates a new MailService.
func NewMailService(host string, port int, user, password, to string) *MailService {
	if to == "" {
		to = user
	}
	return &MailService{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		to:       to,
	}
}

// SendPartnerRequest emails a partnership application to the configured
// recipient. A missing SMTP configuration is logged and skipped, not an
// error: delivery is fire-and-forget.
func (s *MailService) SendPartnerRequest(req models.PartnerRequest) error {
	if s.host == "" || s.user == "" {
		log.Println("[Mail] SMTP not configured, skipping partner notification")
		return nil
	}

	orDash := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}

	body := fmt.Sprintf(`<h2>Новая заявка на партнёрство</h2>
<p><strong>Имя:</strong> %s</p>
<p><strong>Телефон:</strong> %s</p>
<p><strong>Проф. деятельность:</strong> %s</p>
<p><strong>Профиль (Instagram и т.д.):</strong> %s</p>
<p><strong>Кратко об аудитории:</strong> %s</p>
<hr />
<p><small>Отправлено с формы партнёров на сайте Madera Design.</small></p>`,
		req.Name,
		req.Phone,
		orDash(req.Activity),
		orDash(req.ProfileLink),
		orDash(req.About),
	)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.user, "Madera Design")
	msg.SetHeader("To", s.to)
	msg.SetHeader("Subject", "Новая заявка на партнёрство")
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("[Mail] Failed to send partner notification: %v", err)
		return err
	}

	return nil
}
