package service

import (
	"fmt"
	"strings"

	"jobmatch_backend/internal/config"
	"jobmatch_backend/internal/util"
	"jobmatch_backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ContactService relays a free-text inquiry to staff through the Mailer. It
// persists nothing. Local mode is an explicit constructor-time decision: the
// relay then logs a simulated send instead of touching SMTP at all.
type ContactService struct {
	mailer    Mailer
	localMode bool
	from      string
	to        string
	validate  *validator.Validate
}

func NewContactService(mailer Mailer, cfg config.MailConfig) *ContactService {
	return &ContactService{
		mailer:    mailer,
		localMode: cfg.IsLocal(),
		from:      cfg.From,
		to:        cfg.To,
		validate:  validator.New(),
	}
}

// RelayResult reports whether the send was simulated by local mode.
type RelayResult struct {
	Mock bool
}

func (s *ContactService) Relay(subject, content, replyTo string) (RelayResult, error) {
	subject = strings.TrimSpace(subject)
	content = strings.TrimSpace(content)
	replyTo = strings.TrimSpace(replyTo)

	if subject == "" {
		return RelayResult{}, util.ErrSubjectRequired
	}
	if content == "" {
		return RelayResult{}, util.ErrContentRequired
	}

	msg := MailMessage{
		From:    s.from,
		To:      s.to,
		Subject: "【お問い合わせ】" + subject,
		Body:    s.composeBody(subject, content, replyTo),
	}
	if replyTo != "" && s.validate.Var(replyTo, "email") == nil {
		msg.ReplyTo = replyTo
	}

	if s.localMode {
		logger.Log.Info("mock mail sent",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
		return RelayResult{Mock: true}, nil
	}

	if err := s.mailer.Send(msg); err != nil {
		logger.Log.Error("contact mail delivery failed",
			zap.Error(err),
			zap.String("to", msg.To))
		return RelayResult{}, util.ErrMailSendFailed
	}
	return RelayResult{}, nil
}

func (s *ContactService) composeBody(subject, content, replyTo string) string {
	var b strings.Builder
	b.WriteString("以下のお問い合わせを受け付けました。\n\n")
	b.WriteString(separator)
	if replyTo != "" {
		fmt.Fprintf(&b, "送信者メールアドレス: %s\n", replyTo)
	}
	fmt.Fprintf(&b, "件名: %s\n", subject)
	b.WriteString(separator)
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n\n")
	b.WriteString(separator)
	b.WriteString("Sent from Swipe Match Agent System")
	return b.String()
}

const separator = "--------------------------------------------------\n"
