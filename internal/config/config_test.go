package config

import (
	"strings"
	"testing"

	"affitto/internal/core"
)

const validDoc = `
people:
  alice:
    email: alice@example.com
    cc: partner@example.com
    paypal: true
  bob:
    email: bob@example.com
rent:
  - since: 2023-01-01
    splits: {alice: 1000, bob: 1200}
  - since: 2023-06-01
    splits: {alice: 1050, bob: 1200.50}
utilities:
  2023:
    7: {Electric: 90, Water: 30}
email:
  from: rent@example.com
  bcc: archive@example.com
payment_links:
  paypal: alice-handle
`

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if len(cfg.People) != 2 {
		t.Fatalf("expected 2 people, got %d", len(cfg.People))
	}
	alice := cfg.People["alice"]
	if alice.Email != "alice@example.com" || alice.Cc != "partner@example.com" || !alice.PayPal || alice.Square {
		t.Errorf("unexpected alice: %+v", alice)
	}

	if len(cfg.Rent) != 2 {
		t.Fatalf("expected 2 rent periods, got %d", len(cfg.Rent))
	}
	if !cfg.Rent[0].Since.Equal(core.NewDate(2023, 1, 1).Time) {
		t.Errorf("rent[0].Since = %s", cfg.Rent[0].Since.ISO())
	}
	if got := cfg.Rent[1].Splits["bob"].Cents; got != 120050 {
		t.Errorf("bob's second-period rent = %d cents, want 120050", got)
	}

	if got := cfg.Utilities[2023][7]["Electric"].Cents; got != 9000 {
		t.Errorf("Electric = %d cents, want 9000", got)
	}
	if cfg.Email.From != "rent@example.com" || cfg.Email.Bcc != "archive@example.com" {
		t.Errorf("unexpected email config: %+v", cfg.Email)
	}
	if cfg.PaymentLinks["paypal"] != "alice-handle" {
		t.Errorf("paypal handle = %q", cfg.PaymentLinks["paypal"])
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "missing person email",
			mutate:  func(s string) string { return strings.Replace(s, "email: bob@example.com", "cc: x@example.com", 1) },
			wantErr: `person "bob": missing email`,
		},
		{
			name:    "missing from address",
			mutate:  func(s string) string { return strings.Replace(s, "from: rent@example.com", "from: \"\"", 1) },
			wantErr: "email.from is required",
		},
		{
			name:    "missing bcc address",
			mutate:  func(s string) string { return strings.Replace(s, "bcc: archive@example.com", "bcc: \"\"", 1) },
			wantErr: "email.bcc is required",
		},
		{
			name:    "schedule out of order",
			mutate:  func(s string) string { return strings.Replace(s, "since: 2023-06-01", "since: 2022-06-01", 1) },
			wantErr: "schedule must ascend",
		},
		{
			name: "person missing from a rent period",
			mutate: func(s string) string {
				return strings.Replace(s, "splits: {alice: 1050, bob: 1200.50}", "splits: {alice: 1050}", 1)
			},
			wantErr: `no split for person "bob"`,
		},
		{
			name:    "payment link opt-in without handle",
			mutate:  func(s string) string { return strings.Replace(s, "paypal: alice-handle", "square: sq-handle", 1) },
			wantErr: "payment_links.paypal is not set",
		},
		{
			name: "invalid utility month",
			mutate: func(s string) string {
				return strings.Replace(s, "7: {Electric: 90, Water: 30}", "13: {Electric: 90}", 1)
			},
			wantErr: "invalid month 13",
		},
		{
			name:    "negative amount",
			mutate:  func(s string) string { return strings.Replace(s, "Water: 30", "Water: -30", 1) },
			wantErr: "invalid amount",
		},
		{
			name:    "bad since date",
			mutate:  func(s string) string { return strings.Replace(s, "since: 2023-01-01", "since: January 2023", 1) },
			wantErr: "expected YYYY-MM-DD",
		},
		{
			name:    "unknown key rejected",
			mutate:  func(s string) string { return s + "\nextra_section: {a: 1}\n" },
			wantErr: "field extra_section not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(validDoc)))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParse_EmptyRentSchedule(t *testing.T) {
	doc := `
people:
  alice: {email: a@example.com}
rent: []
utilities:
  2023:
    7: {Electric: 90}
email: {from: f@example.com, bcc: b@example.com}
`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "rent schedule is empty") {
		t.Fatalf("expected empty-schedule error, got %v", err)
	}
}
