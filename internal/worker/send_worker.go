// Package worker delivers queued statements: it consumes statement
// messages published by queue mode and hands each envelope to the
// configured mail transport.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"affitto/internal/amqp"
	"affitto/internal/mail"
)

// SendWorker delivers statement envelopes pulled off the queue.
type SendWorker struct {
	sender mail.Sender
}

func NewSendWorker(sender mail.Sender) *SendWorker {
	return &SendWorker{sender: sender}
}

// HandleStatement delivers a single queued statement. The returned error
// drives the queue acknowledgment: nil acks, non-nil requeues.
func (w *SendWorker) HandleStatement(ctx context.Context, msg *amqp.StatementMessage) error {
	slog.InfoContext(ctx, "Delivering queued statement",
		"recipient", msg.Recipient,
		"queued_at", msg.Timestamp)

	if len(msg.Envelope.Recipients) == 0 {
		// Undeliverable no matter how often it is retried.
		slog.WarnContext(ctx, "Dropping statement with no recipients")
		return nil
	}

	if err := w.sender.Send(ctx, msg.Envelope); err != nil {
		return fmt.Errorf("deliver statement: %w", err)
	}
	return nil
}
