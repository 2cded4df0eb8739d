package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
)

// SMTPSender delivers envelopes through a plain SMTP relay. Credentials are
// optional; when present, PLAIN auth is used.
type SMTPSender struct {
	addr     string // host:port
	username string
	password string
}

func NewSMTPSender(addr, username, password string) *SMTPSender {
	return &SMTPSender{addr: addr, username: username, password: password}
}

// Send performs a single MAIL FROM / RCPT TO / DATA exchange. The connection
// is opened and closed per envelope; there is no pooling or retry.
func (s *SMTPSender) Send(ctx context.Context, env Envelope) error {
	var auth smtp.Auth
	if s.username != "" {
		host, _, err := net.SplitHostPort(s.addr)
		if err != nil {
			return fmt.Errorf("smtp address %q: %w", s.addr, err)
		}
		auth = smtp.PlainAuth("", s.username, s.password, host)
	}

	if err := smtp.SendMail(s.addr, auth, env.From, env.Recipients, []byte(env.Message)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	slog.InfoContext(ctx, "Sent email over SMTP",
		"addr", s.addr,
		"from", env.From,
		"recipients", len(env.Recipients))
	return nil
}
