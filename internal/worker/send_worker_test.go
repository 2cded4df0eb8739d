package worker

import (
	"context"
	"errors"
	"testing"

	"affitto/internal/amqp"
	"affitto/internal/mail"
)

type fakeSender struct {
	sent []mail.Envelope
	err  error
}

func (s *fakeSender) Send(_ context.Context, env mail.Envelope) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, env)
	return nil
}

func statementMsg(recipients ...string) *amqp.StatementMessage {
	return amqp.NewStatementMessage(mail.Envelope{
		From:       "rent@example.com",
		Recipients: recipients,
		Message:    "From: rent@example.com\n\nTotal: 1040.00\n",
	})
}

func TestSendWorker_Delivers(t *testing.T) {
	sender := &fakeSender{}
	w := NewSendWorker(sender)

	if err := w.HandleStatement(context.Background(), statementMsg("alice@example.com")); err != nil {
		t.Fatalf("HandleStatement: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0].Recipients[0] != "alice@example.com" {
		t.Errorf("unexpected deliveries: %+v", sender.sent)
	}
}

// A transport failure surfaces so the queue requeues the message.
func TestSendWorker_PropagatesTransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("relay down")}
	w := NewSendWorker(sender)

	err := w.HandleStatement(context.Background(), statementMsg("alice@example.com"))
	if err == nil || !errors.Is(err, sender.err) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

// A message without recipients can never be delivered; it is acked and
// dropped rather than requeued forever.
func TestSendWorker_DropsEmptyRecipients(t *testing.T) {
	sender := &fakeSender{}
	w := NewSendWorker(sender)

	if err := w.HandleStatement(context.Background(), statementMsg()); err != nil {
		t.Fatalf("HandleStatement: %v", err)
	}
	if len(sender.sent) != 0 {
		t.Errorf("delivered an empty-recipient statement: %+v", sender.sent)
	}
}
