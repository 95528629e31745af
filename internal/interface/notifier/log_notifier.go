package notifier

import (
	"context"

	"personalityai-service/internal/domain/repository"
	"personalityai-service/pkg/logger"
)

// LogNotifier implements the Notifier interface by recording the message on
// the secure log channel instead of delivering it. This is the default
// channel until a delivery integration is configured.
type LogNotifier struct {
	logger logger.Logger
}

// NewLogNotifier creates a new logging notifier
func NewLogNotifier(log logger.Logger) repository.Notifier {
	return &LogNotifier{logger: log}
}

// Send records the notification on the secure channel
func (n *LogNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.logger.Info("HIPAA secure clinical notification",
		"to", to,
		"subject", subject,
		"body", body)
	return nil
}
