// Package mail defines the message envelope handed off by the billing
// calculator and the transports that deliver it.
package mail

import "context"

// Envelope is a composed statement ready for delivery. Message is the full
// RFC 822 text (header block, blank line, body). Recipients is the actual
// delivery list, which includes the bcc address even though no Bcc header
// appears in Message.
type Envelope struct {
	From       string   `json:"from"`
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
}

// Sender delivers an envelope or fails with a transport error. The billing
// code treats the transport as opaque.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}
