// File: services/notification/email.go
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"tripplanner/config"
	"tripplanner/models"
	"tripplanner/utils"

	"github.com/domodwyer/mailyak/v3"
	"go.uber.org/zap"
)

// DefaultNotificationService sends booking emails over SMTP.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

// SendBookingEmail renders and delivers one booking document. The recipient
// address is validated here as the last line of defence; an invalid address
// is a permanent failure, not worth retrying.
func (s *DefaultNotificationService) SendBookingEmail(ctx context.Context, email models.BookingEmail) error {
	if !strings.Contains(email.To, "@") || !strings.Contains(email.To, ".") {
		return fmt.Errorf("invalid recipient address %q", email.To)
	}

	cfg := config.AppConfig
	mail := mailyak.New(
		fmt.Sprintf("%s:%d", cfg.SMTPServer, cfg.SMTPPort),
		smtp.PlainAuth("", cfg.SenderEmail, cfg.SenderPassword, cfg.SMTPServer),
	)

	subject, html, plain := RenderBookingEmail(email)
	mail.To(email.To)
	mail.From(cfg.SenderEmail)
	mail.FromName("Trip Planner")
	mail.Subject(subject)
	mail.HTML().Set(html)
	mail.Plain().Set(plain)

	if err := mail.Send(); err != nil {
		return fmt.Errorf("sending booking email to %s: %w", email.To, err)
	}
	utils.GetLogger().Info("booking email sent",
		zap.String("to", email.To),
		zap.String("booking_id", email.BookingID),
	)
	return nil
}
