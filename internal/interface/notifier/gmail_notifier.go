package notifier

import (
	"context"
	"encoding/base64"
	"fmt"

	"personalityai-service/internal/domain/repository"
	"personalityai-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailNotifier implements the Notifier interface by delivering messages
// through the Gmail API
type GmailNotifier struct {
	service *gmail.Service
	from    string
	logger  logger.Logger
}

// NewGmailNotifier creates a new Gmail-backed notifier
func NewGmailNotifier(ctx context.Context, tokenSource oauth2.TokenSource, from string, log logger.Logger) (repository.Notifier, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &GmailNotifier{
		service: service,
		from:    from,
		logger:  log,
	}, nil
}

// Send delivers the notification to the patient's mailbox
func (n *GmailNotifier) Send(ctx context.Context, to, subject, body string) error {
	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		n.from, to, subject, body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	if _, err := n.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.logger.Info("Notification delivered", "to", to, "subject", subject)
	return nil
}
