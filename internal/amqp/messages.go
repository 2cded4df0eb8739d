package amqp

import (
	"encoding/json"
	"time"

	"affitto/internal/mail"
)

// StatementMessage carries one composed statement envelope through the
// queue. The worker delivers it as-is; no recomputation happens on the
// consuming side. Recipient is the primary To address, kept as a log
// identifier.
type StatementMessage struct {
	Recipient string        `json:"recipient"`
	Envelope  mail.Envelope `json:"envelope"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewStatementMessage wraps an envelope for publishing.
func NewStatementMessage(env mail.Envelope) *StatementMessage {
	recipient := ""
	if len(env.Recipients) > 0 {
		recipient = env.Recipients[0]
	}
	return &StatementMessage{
		Recipient: recipient,
		Envelope:  env,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *StatementMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// StatementMessageFromJSON creates a message from JSON bytes.
func StatementMessageFromJSON(data []byte) (*StatementMessage, error) {
	var msg StatementMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
