package services

import (
	"context"

	"go.uber.org/zap"
)

// EmailSender hands a rendered message to the delivery relay. Fire and
// forget: a nil error means the relay accepted it, nothing more.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogMailer is wired when no relay endpoint is configured. It records what
// would have been sent so local development still shows the full flow.
type LogMailer struct {
	Logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{Logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.Logger.Info("email relay not configured, logging instead",
		zap.String("to", to), zap.String("subject", subject), zap.Int("body_bytes", len(htmlBody)))
	return nil
}
