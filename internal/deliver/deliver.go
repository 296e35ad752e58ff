// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deliver sends the rendered brief over SMTP. One authenticated
// session per run: dial, send with the artifact attached, close. Transport
// failures are reported to the caller and the artifact stays on disk so an
// operator can resend it by hand.
package deliver

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/JamilLatif/daily-brief/pkg/types"
)

// Dialer opens one authenticated transport session and sends. gomail.Dialer
// satisfies it; tests substitute a recorder.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer delivers artifacts to the configured recipient.
type Mailer struct {
	dialer Dialer
	cfg    types.DeliveryConfig
}

// NewMailer builds a Mailer with a STARTTLS dialer from the delivery config.
func NewMailer(cfg types.DeliveryConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg:    cfg,
	}
}

// NewMailerWithDialer is the test seam: a Mailer over an arbitrary dialer.
func NewMailerWithDialer(dialer Dialer, cfg types.DeliveryConfig) *Mailer {
	return &Mailer{dialer: dialer, cfg: cfg}
}

// Send attaches the artifact and sends it to the recipient. Missing
// credentials fail before any session is opened.
func (m *Mailer) Send(doc types.BriefDocument, artifact types.Artifact) error {
	if m.cfg.Username == "" {
		return &types.MissingConfigError{Name: "delivery.username"}
	}
	if m.cfg.Password == "" {
		return &types.MissingConfigError{Name: "delivery.password"}
	}
	if m.cfg.Recipient == "" {
		return &types.MissingConfigError{Name: "delivery.recipient"}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Username)
	msg.SetHeader("To", m.cfg.Recipient)
	msg.SetHeader("Subject", Subject(doc))
	msg.SetBody("text/plain", Body(doc))
	msg.Attach(artifact.Path)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending brief to %s: %w", m.cfg.Recipient, err)
	}
	return nil
}

// Subject derives the message subject from the generation date.
func Subject(doc types.BriefDocument) string {
	return "Daily Intelligence Brief - " + doc.GeneratedAt.Format("January 2, 2006")
}

// Body builds the plain-text message body, listing the sections the attached
// brief covers.
func Body(doc types.BriefDocument) string {
	body := "Your daily intelligence brief is attached.\n\nThis brief covers:\n"
	for _, block := range doc.Blocks {
		body += "- " + block.Heading + "\n"
	}
	body += "\nBest regards,\nYour Daily Brief System\n"
	return body
}
