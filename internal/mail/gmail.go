package mail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	goption "google.golang.org/api/option"
)

// GmailSender delivers envelopes through the Gmail API using OAuth user
// credentials. Run cmd/oauth-init once to mint the token file.
type GmailSender struct {
	svc *gmail.Service
}

// NewGmailSenderFromEnv builds a Gmail client from environment variables.
// Required (one of each pair):
//
//	GOOGLE_OAUTH_CLIENT_JSON or GOOGLE_OAUTH_CLIENT_FILE
//	GOOGLE_OAUTH_TOKEN_JSON  or GOOGLE_OAUTH_TOKEN_FILE
func NewGmailSenderFromEnv(ctx context.Context) (*GmailSender, error) {
	clientJSON, err := readEnvJSON("GOOGLE_OAUTH_CLIENT_JSON", "GOOGLE_OAUTH_CLIENT_FILE")
	if err != nil {
		return nil, err
	}
	tokenJSON, err := readEnvJSON("GOOGLE_OAUTH_TOKEN_JSON", "GOOGLE_OAUTH_TOKEN_FILE")
	if err != nil {
		return nil, err
	}

	oauthCfg, err := google.ConfigFromJSON(clientJSON, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("oauth config: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("parse oauth token: %w", err)
	}

	svc, err := gmail.NewService(ctx, goption.WithHTTPClient(oauthCfg.Client(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return &GmailSender{svc: svc}, nil
}

func readEnvJSON(inlineKey, fileKey string) ([]byte, error) {
	if v := strings.TrimSpace(os.Getenv(inlineKey)); v != "" {
		return []byte(v), nil
	}
	if path := strings.TrimSpace(os.Getenv(fileKey)); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fileKey, err)
		}
		return b, nil
	}
	return nil, errors.New("missing credentials (set " + inlineKey + " or " + fileKey + ")")
}

// Send transmits the envelope as a raw RFC 822 message. Gmail derives
// recipients from the message headers, so recipients that appear in the
// delivery list but not in To/Cc (the bcc address) are added as a Bcc
// header first.
func (s *GmailSender) Send(ctx context.Context, env Envelope) error {
	raw := withBccHeader(env)

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))}
	if _, err := s.svc.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}

	slog.InfoContext(ctx, "Sent email over Gmail API",
		"from", env.From,
		"recipients", len(env.Recipients))
	return nil
}

// withBccHeader returns the message text with a Bcc header covering every
// recipient not already named in a To or Cc header.
func withBccHeader(env Envelope) string {
	headerBlock, body, _ := strings.Cut(env.Message, "\n\n")

	named := make(map[string]bool)
	headers := strings.Split(headerBlock, "\n")
	for _, h := range headers {
		key, val, ok := strings.Cut(h, ":")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "to", "cc":
			for _, addr := range strings.Split(val, ",") {
				named[strings.TrimSpace(addr)] = true
			}
		}
	}

	var hidden []string
	for _, addr := range env.Recipients {
		if !named[addr] {
			hidden = append(hidden, addr)
		}
	}
	if len(hidden) == 0 {
		return env.Message
	}

	headers = append(headers, "Bcc: "+strings.Join(hidden, ", "))
	return strings.Join(headers, "\n") + "\n\n" + body
}
