package service

import (
	"errors"
	"testing"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	err   error
	calls int
	last  MailMessage
}

func (m *fakeMailer) Send(msg MailMessage) error {
	m.calls++
	m.last = msg
	return m.err
}

func smtpConfig() config.MailConfig {
	return config.MailConfig{
		Mode: "smtp",
		From: "noreply@shukatsu-agent-match.com",
		To:   "customer@shukatsu-agent-match.com",
	}
}

func TestRelayValidation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, smtpConfig())

	_, err := svc.Relay("", "内容", "")
	assert.ErrorIs(t, err, util.ErrSubjectRequired)

	_, err = svc.Relay("件名", "  ", "")
	assert.ErrorIs(t, err, util.ErrContentRequired)

	assert.Zero(t, mailer.calls)
}

func TestRelayDeliversThroughMailer(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, smtpConfig())

	result, err := svc.Relay("面談について", "詳細を教えてください", "taro@example.com")
	require.NoError(t, err)
	assert.False(t, result.Mock)
	require.Equal(t, 1, mailer.calls)

	assert.Equal(t, "customer@shukatsu-agent-match.com", mailer.last.To)
	assert.Equal(t, "noreply@shukatsu-agent-match.com", mailer.last.From)
	assert.Equal(t, "【お問い合わせ】面談について", mailer.last.Subject)
	assert.Equal(t, "taro@example.com", mailer.last.ReplyTo)
	assert.Contains(t, mailer.last.Body, "件名: 面談について")
	assert.Contains(t, mailer.last.Body, "詳細を教えてください")
	assert.Contains(t, mailer.last.Body, "送信者メールアドレス: taro@example.com")
	assert.Contains(t, mailer.last.Body, "Sent from Swipe Match Agent System")
}

func TestRelayInvalidReplyToDropped(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, smtpConfig())

	_, err := svc.Relay("件名", "内容", "not-an-address")
	require.NoError(t, err)
	assert.Empty(t, mailer.last.ReplyTo)
	// The raw text still reaches staff inside the body.
	assert.Contains(t, mailer.last.Body, "not-an-address")
}

func TestRelayDeliveryFailureSurfaces(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp: connection refused")}
	svc := NewContactService(mailer, smtpConfig())

	_, err := svc.Relay("件名", "内容", "")
	assert.ErrorIs(t, err, util.ErrMailSendFailed)
}

func TestRelayLocalModeShortCircuits(t *testing.T) {
	cfg := smtpConfig()
	cfg.Mode = "local"
	// No mailer at all: local mode must not touch SMTP.
	svc := NewContactService(nil, cfg)

	result, err := svc.Relay("件名", "内容", "")
	require.NoError(t, err)
	assert.True(t, result.Mock)
}
