package mail

import (
	"context"
	"strings"
	"testing"
)

func TestConsoleSender_Send(t *testing.T) {
	var out strings.Builder
	sender := NewConsoleSender(&out)

	env := Envelope{
		From:       "rent@example.com",
		Recipients: []string{"alice@example.com", "archive@example.com"},
		Message:    "From: rent@example.com\nTo: alice@example.com\n\nRent: 1000.00\n",
	}
	if err := sender.Send(context.Background(), env); err != nil {
		t.Fatalf("Send: %v", err)
	}

	want := strings.Join([]string{
		"from: rent@example.com",
		"recipients: alice@example.com, archive@example.com",
		"| From: rent@example.com",
		"| To: alice@example.com",
		"| ",
		"| Rent: 1000.00",
		"",
	}, "\n")
	if out.String() != want {
		t.Errorf("output mismatch:\n--- got ---\n%s\n--- want ---\n%s", out.String(), want)
	}
}
