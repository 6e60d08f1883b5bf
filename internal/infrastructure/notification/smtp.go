package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/condo/backend/internal/domain/residence"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/utility"
	"github.com/condo/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// sendFunc matches smtp.SendMail; swapped out in tests
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier delivers new-utility announcements to every apartment with an
// email address on file. Delivery errors are reported as DELIVERY_FAILED;
// the caller decides whether that is fatal.
type SMTPNotifier struct {
	cfg        config.SMTPConfig
	apartments residence.ApartmentRepository
	logger     *zap.Logger
	send       sendFunc
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(cfg config.SMTPConfig, apartments residence.ApartmentRepository, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:        cfg,
		apartments: apartments,
		logger:     logger,
		send:       smtp.SendMail,
	}
}

// NotifyAllApartments sends one announcement covering all apartments that have
// an email address. Apartments without one are skipped silently; no recipients
// at all is a no-op, not an error.
func (n *SMTPNotifier) NotifyAllApartments(ctx context.Context, u *utility.CommunalUtility) error {
	apartments, err := n.apartments.FindAll(ctx)
	if err != nil {
		return err
	}

	recipients := make([]string, 0, len(apartments))
	for _, a := range apartments {
		if strings.TrimSpace(a.Email) != "" {
			recipients = append(recipients, a.Email)
		}
	}
	if len(recipients) == 0 {
		n.logger.Info("no apartment email addresses on file, skipping notification",
			zap.String("utility", u.Name),
		)
		return nil
	}

	msg := buildAnnouncement(n.cfg.From, recipients, u)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := n.send(n.cfg.Addr(), auth, n.cfg.From, recipients, msg); err != nil {
		n.logger.Error("apartment notification delivery failed",
			zap.String("utility", u.Name),
			zap.Int("recipients", len(recipients)),
			zap.Error(err),
		)
		return shared.NewDomainError("DELIVERY_FAILED", "Apartment notification could not be delivered")
	}

	n.logger.Info("apartment notification delivered",
		zap.String("utility", u.Name),
		zap.Int("recipients", len(recipients)),
	)
	return nil
}

// buildAnnouncement renders the RFC 5322 message announcing a new utility
func buildAnnouncement(from string, recipients []string, u *utility.CommunalUtility) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&b, "Subject: New communal utility: %s\r\n", u.Name)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "A new communal utility %q has been introduced for the complex.\r\n", u.Name)
	if u.Deadline != nil {
		fmt.Fprintf(&b, "It applies until %s.\r\n", u.Deadline.Format("2006-01-02"))
	}
	b.WriteString("The corresponding sub-bill has been added to your apartment account.\r\n")
	return []byte(b.String())
}
