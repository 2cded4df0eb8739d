// Package config loads and validates the household configuration document.
//
// The document is read once at startup and treated as read-only afterwards.
// Every cross-reference (rent splits, payment-link opt-ins, addresses) is
// checked here, at the load boundary, so the billing code never discovers a
// missing key mid-run.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"affitto/internal/core"
)

// Person is one household member's delivery addresses and payment-link opt-ins.
type Person struct {
	Email  string
	Cc     string
	PayPal bool
	Square bool
}

// RentPeriod is one entry of the rent schedule: the per-person monthly split
// in effect from Since onwards.
type RentPeriod struct {
	Since  core.Date
	Splits map[string]core.Money
}

// Email holds the sender and the always-appended bcc address.
type Email struct {
	From string
	Bcc  string
}

// Config is the parsed, validated household document.
type Config struct {
	People       map[string]Person
	Rent         []RentPeriod // ascending by Since
	Utilities    map[int]map[int]map[string]core.Money
	Email        Email
	PaymentLinks map[string]string // provider -> account handle
}

// Raw document shapes. Money and dates come in as YAML scalars and are
// parsed through core so the exact-cents semantics apply from the start.
type (
	document struct {
		People       map[string]personDoc              `yaml:"people"`
		Rent         []rentDoc                         `yaml:"rent"`
		Utilities    map[int]map[int]map[string]amount `yaml:"utilities"`
		Email        emailDoc                          `yaml:"email"`
		PaymentLinks map[string]string                 `yaml:"payment_links"`
	}

	personDoc struct {
		Email  string `yaml:"email"`
		Cc     string `yaml:"cc"`
		PayPal bool   `yaml:"paypal"`
		Square bool   `yaml:"square"`
	}

	rentDoc struct {
		Since  isoDate           `yaml:"since"`
		Splits map[string]amount `yaml:"splits"`
	}

	emailDoc struct {
		From string `yaml:"from"`
		Bcc  string `yaml:"bcc"`
	}

	amount  struct{ core.Money }
	isoDate struct{ core.Date }
)

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	m, err := core.ParseMoney(node.Value)
	if err != nil {
		return fmt.Errorf("amount %q: %w", node.Value, err)
	}
	a.Money = m
	return nil
}

func (d *isoDate) UnmarshalYAML(node *yaml.Node) error {
	t, err := time.Parse("2006-01-02", node.Value)
	if err != nil {
		return fmt.Errorf("date %q: expected YYYY-MM-DD", node.Value)
	}
	d.Date = core.NewDate(t.Year(), int(t.Month()), t.Day())
	return nil
}

// Load reads and validates the household document at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a household document. Unknown keys are
// rejected so typos fail loudly instead of silently dropping data.
func Parse(raw []byte) (*Config, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &Config{
		People:       make(map[string]Person, len(doc.People)),
		Rent:         make([]RentPeriod, 0, len(doc.Rent)),
		Utilities:    make(map[int]map[int]map[string]core.Money, len(doc.Utilities)),
		Email:        Email{From: doc.Email.From, Bcc: doc.Email.Bcc},
		PaymentLinks: doc.PaymentLinks,
	}
	for name, p := range doc.People {
		cfg.People[name] = Person{Email: p.Email, Cc: p.Cc, PayPal: p.PayPal, Square: p.Square}
	}
	for _, r := range doc.Rent {
		splits := make(map[string]core.Money, len(r.Splits))
		for name, v := range r.Splits {
			splits[name] = v.Money
		}
		cfg.Rent = append(cfg.Rent, RentPeriod{Since: r.Since.Date, Splits: splits})
	}
	for year, months := range doc.Utilities {
		cfg.Utilities[year] = make(map[int]map[string]core.Money, len(months))
		for month, cats := range months {
			m := make(map[string]core.Money, len(cats))
			for cat, v := range cats {
				m[cat] = v.Money
			}
			cfg.Utilities[year][month] = m
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the whole document and returns every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if len(c.People) == 0 {
		errs = append(errs, "no people configured")
	}
	for name, p := range c.People {
		if strings.TrimSpace(p.Email) == "" {
			errs = append(errs, fmt.Sprintf("person %q: missing email", name))
		}
		if p.PayPal && strings.TrimSpace(c.PaymentLinks["paypal"]) == "" {
			errs = append(errs, fmt.Sprintf("person %q opts into paypal but payment_links.paypal is not set", name))
		}
		if p.Square && strings.TrimSpace(c.PaymentLinks["square"]) == "" {
			errs = append(errs, fmt.Sprintf("person %q opts into square but payment_links.square is not set", name))
		}
	}

	if strings.TrimSpace(c.Email.From) == "" {
		errs = append(errs, "email.from is required")
	}
	if strings.TrimSpace(c.Email.Bcc) == "" {
		errs = append(errs, "email.bcc is required")
	}

	if len(c.Rent) == 0 {
		errs = append(errs, "rent schedule is empty")
	}
	for i, period := range c.Rent {
		if period.Since.IsZero() {
			errs = append(errs, fmt.Sprintf("rent[%d]: missing since date", i))
		}
		if i > 0 && !c.Rent[i-1].Since.Before(period.Since) {
			errs = append(errs, fmt.Sprintf("rent[%d]: since %s is not after rent[%d] (schedule must ascend)",
				i, period.Since.ISO(), i-1))
		}
		// Entries may carry splits for former members, but every current
		// person must be covered so the due-date lookup is total.
		for name := range c.People {
			if _, ok := period.Splits[name]; !ok {
				errs = append(errs, fmt.Sprintf("rent[%d] (since %s): no split for person %q",
					i, period.Since.ISO(), name))
			}
		}
	}

	for year, months := range c.Utilities {
		if year < 1970 || year > 9999 {
			errs = append(errs, fmt.Sprintf("utilities: implausible year %d", year))
		}
		for month, cats := range months {
			if month < 1 || month > 12 {
				errs = append(errs, fmt.Sprintf("utilities[%d]: invalid month %d", year, month))
			}
			if len(cats) == 0 {
				errs = append(errs, fmt.Sprintf("utilities[%d][%d]: no categories", year, month))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
