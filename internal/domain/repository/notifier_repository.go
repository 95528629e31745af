package repository

import (
	"context"
)

// Notifier defines the interface for the outbound patient notification
// channel. Implementations decide whether messages are actually delivered or
// only recorded on a secure channel.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
