package mail

import (
	"strings"
	"testing"
)

func TestWithBccHeader(t *testing.T) {
	message := strings.Join([]string{
		"From: rent@example.com",
		"To: alice@example.com",
		"Cc: partner@example.com",
		"Subject: August rent is $1040.00",
		"",
		"Rent: 1000.00",
		"Total: 1040.00",
		"",
	}, "\n")

	tests := []struct {
		name       string
		recipients []string
		wantBcc    string // empty means no Bcc header expected
	}{
		{
			name:       "bcc recipient is added",
			recipients: []string{"alice@example.com", "partner@example.com", "archive@example.com"},
			wantBcc:    "Bcc: archive@example.com",
		},
		{
			name:       "all recipients already named",
			recipients: []string{"alice@example.com", "partner@example.com"},
			wantBcc:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Envelope{From: "rent@example.com", Recipients: tt.recipients, Message: message}
			got := withBccHeader(env)

			if tt.wantBcc == "" {
				if got != message {
					t.Errorf("message was modified:\n%s", got)
				}
				return
			}
			headerBlock, body, _ := strings.Cut(got, "\n\n")
			if !strings.Contains(headerBlock, tt.wantBcc) {
				t.Errorf("header block %q missing %q", headerBlock, tt.wantBcc)
			}
			if !strings.Contains(body, "Rent: 1000.00") {
				t.Errorf("body lost content:\n%s", body)
			}
		})
	}
}
