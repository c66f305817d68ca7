package mail

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newTestMailer(opts Options, sent *[]sentMail, err error) *SMTPMailer {
	m := NewSMTPMailer(opts, logger.NewNoopLogger())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr, a, from, to, string(msg)})
		return err
	}
	return m
}

func TestSMTPMailerSendCode(t *testing.T) {
	var sent []sentMail
	m := newTestMailer(Options{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "bot",
		Password: "pw",
		From:     "FinTrack <no-reply@fintrack.local>",
	}, &sent, nil)

	require.NoError(t, m.SendCode(context.Background(), "ada@example.com", "042917", entity.PurposeRegister))
	require.Len(t, sent, 1)

	got := sent[0]
	assert.Equal(t, "smtp.example.com:587", got.addr)
	assert.NotNil(t, got.auth)
	assert.Equal(t, "no-reply@fintrack.local", got.from)
	assert.Equal(t, []string{"ada@example.com"}, got.to)
	assert.Contains(t, got.msg, "Subject: FinTrack Email Verification\r\n")
	assert.Contains(t, got.msg, "Your verification code is: 042917")
}

func TestSMTPMailerResetSubjectAndNoAuth(t *testing.T) {
	var sent []sentMail
	m := newTestMailer(Options{Host: "localhost", Port: 1025, From: "noreply@fintrack.local"}, &sent, nil)

	require.NoError(t, m.SendCode(context.Background(), "ada@example.com", "111111", entity.PurposeReset))
	assert.Nil(t, sent[0].auth)
	assert.Equal(t, "noreply@fintrack.local", sent[0].from)
	assert.Contains(t, sent[0].msg, "Subject: FinTrack Password Reset")
}

func TestSMTPMailerFailure(t *testing.T) {
	var sent []sentMail
	relayDown := errors.New("connection refused")
	m := newTestMailer(Options{Host: "localhost", Port: 25}, &sent, relayDown)

	err := m.SendCode(context.Background(), "ada@example.com", "1", entity.PurposeRegister)
	assert.ErrorIs(t, err, relayDown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendCode(ctx, "ada@example.com", "1", entity.PurposeRegister), context.Canceled)
	assert.Len(t, sent, 1)
}

func TestLogMailer(t *testing.T) {
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Info("Verification code issued", mock.MatchedBy(func(f map[string]any) bool {
		return f["code"] == "123456" && f["to"] == "ada@example.com"
	})).Once()

	require.NoError(t, NewLogMailer(log).SendCode(context.Background(), "ada@example.com", "123456", entity.PurposeRegister))
}
