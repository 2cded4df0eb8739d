package billing

import (
	"reflect"
	"strings"
	"testing"

	"affitto/internal/config"
	"affitto/internal/core"
)

func TestEnvelope_WithCcAndPaymentLink(t *testing.T) {
	calc, err := NewCalculator(testConfig(), core.NewDate(2023, 7, 10))
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	env, err := calc.Envelope("alice")
	if err != nil {
		t.Fatalf("Envelope: %v", err)
	}

	if env.From != "rent@example.com" {
		t.Errorf("From = %q", env.From)
	}
	wantRecipients := []string{"alice@example.com", "partner@example.com", "archive@example.com"}
	if !reflect.DeepEqual(env.Recipients, wantRecipients) {
		t.Errorf("Recipients = %v, want %v", env.Recipients, wantRecipients)
	}

	want := strings.Join([]string{
		"From: rent@example.com",
		"To: alice@example.com",
		"Cc: partner@example.com",
		"Subject: August rent is $1040.00",
		"",
		"Rent: 1000.00",
		"Electric: 30.00 = 90.00 / 3",
		"Water: 10.00 = 30.00 / 3",
		"==============",
		"Total: 1040.00",
		"",
		"https://www.paypal.me/alice-handle/1040.00",
		"",
	}, "\n")
	if env.Message != want {
		t.Errorf("message mismatch:\n--- got ---\n%s\n--- want ---\n%s", env.Message, want)
	}
}

func TestEnvelope_WithoutCcOrLinks(t *testing.T) {
	calc, err := NewCalculator(testConfig(), core.NewDate(2023, 7, 10))
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	env, err := calc.Envelope("bob")
	if err != nil {
		t.Fatalf("Envelope: %v", err)
	}

	wantRecipients := []string{"bob@example.com", "archive@example.com"}
	if !reflect.DeepEqual(env.Recipients, wantRecipients) {
		t.Errorf("Recipients = %v, want %v", env.Recipients, wantRecipients)
	}
	if strings.Contains(env.Message, "Cc:") {
		t.Error("message contains a Cc header for a person without a cc address")
	}
	if strings.Contains(env.Message, "paypal.me") {
		t.Error("message contains a payment link the person did not opt into")
	}
	if !strings.Contains(env.Message, "Subject: August rent is $1240.00") {
		t.Errorf("unexpected subject in:\n%s", env.Message)
	}
	if !strings.HasSuffix(env.Message, "Total: 1240.00\n") {
		t.Errorf("message does not end with the total line:\n%s", env.Message)
	}
}

// The rendered link embeds the account handle and the exact statement total.
func TestEnvelope_PaymentLinkFormat(t *testing.T) {
	cfg := &config.Config{
		People: map[string]config.Person{
			"carol": {Email: "carol@example.com", PayPal: true, Square: true},
		},
		Rent: []config.RentPeriod{
			{Since: core.NewDate(2023, 1, 1), Splits: map[string]core.Money{"carol": cents(120000)}},
		},
		// One person plus the implicit payer: 69.00 / 2 = 34.50.
		Utilities: map[int]map[int]map[string]core.Money{
			2023: {7: {"Electric": cents(6900)}},
		},
		Email:        config.Email{From: "rent@example.com", Bcc: "archive@example.com"},
		PaymentLinks: map[string]string{"paypal": "alice", "square": "$alice"},
	}

	calc, err := NewCalculator(cfg, core.NewDate(2023, 7, 10))
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	env, err := calc.Envelope("carol")
	if err != nil {
		t.Fatalf("Envelope: %v", err)
	}

	// Total is 1200.00 + 34.50 = 1234.50.
	if !strings.Contains(env.Message, "https://www.paypal.me/alice/1234.50") {
		t.Errorf("missing paypal link in:\n%s", env.Message)
	}
	if !strings.Contains(env.Message, "https://cash.app/$alice/1234.50") {
		t.Errorf("missing square link in:\n%s", env.Message)
	}
}
