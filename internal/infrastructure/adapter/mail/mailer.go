package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
)

// Options configures the SMTP relay
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// subjects per purpose
var subjects = map[entity.VerificationPurpose]string{
	entity.PurposeRegister: "FinTrack Email Verification",
	entity.PurposeReset:    "FinTrack Password Reset",
}

// sendFunc matches smtp.SendMail
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends codes through an SMTP relay
type SMTPMailer struct {
	opts   Options
	logger coreport.Logger
	send   sendFunc
}

var _ notification.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer for opts
func NewSMTPMailer(opts Options, logger coreport.Logger) *SMTPMailer {
	return &SMTPMailer{opts: opts, logger: logger, send: smtp.SendMail}
}

// SendCode mails code to the address
func (m *SMTPMailer) SendCode(ctx context.Context, to, code string, purpose entity.VerificationPurpose) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.opts.Username != "" {
		auth = smtp.PlainAuth("", m.opts.Username, m.opts.Password, m.opts.Host)
	}

	addr := net.JoinHostPort(m.opts.Host, strconv.Itoa(m.opts.Port))
	msg := composeMessage(m.opts.From, to, subjects[purpose], "Your verification code is: "+code)
	if err := m.send(addr, auth, envelopeAddress(m.opts.From), []string{to}, msg); err != nil {
		m.logger.Error("Failed to send verification email", map[string]any{
			"to":      to,
			"purpose": string(purpose),
			"error":   err,
		})
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Info("Verification email sent", map[string]any{
		"to":      to,
		"purpose": string(purpose),
	})
	return nil
}

func composeMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// envelopeAddress extracts addr from "Name <addr>"
func envelopeAddress(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return strings.TrimSpace(from)
}

// LogMailer writes codes to the log instead of sending them. Used when no
// SMTP host is configured.
type LogMailer struct {
	logger coreport.Logger
}

var _ notification.Mailer = (*LogMailer)(nil)

// NewLogMailer creates a log mailer
func NewLogMailer(logger coreport.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendCode logs the code at info level
func (m *LogMailer) SendCode(_ context.Context, to, code string, purpose entity.VerificationPurpose) error {
	m.logger.Info("Verification code issued", map[string]any{
		"to":      to,
		"purpose": string(purpose),
		"code":    code,
	})
	return nil
}
