package billing

import (
	"fmt"
	"strings"

	"affitto/internal/config"
	"affitto/internal/mail"
)

const totalSeparator = "=============="

// Payment link templates keyed by provider name. The rendered URL embeds
// the account handle and the statement total.
var paymentLinkURLs = map[string]string{
	"paypal": "https://www.paypal.me/%s/%s",
	"square": "https://cash.app/%s/%s",
}

// Envelope composes the person's statement into a sendable message.
//
// Header block order is fixed: From, To, Cc (only when configured),
// Subject. The delivery list is [to, cc if present, bcc], in that order,
// without deduplication.
func (c *Calculator) Envelope(name string) (mail.Envelope, error) {
	person, ok := c.cfg.People[name]
	if !ok {
		return mail.Envelope{}, &UnknownPersonError{Name: name}
	}

	stmt, err := c.Statement(name)
	if err != nil {
		return mail.Envelope{}, err
	}

	recipients := []string{person.Email}
	headers := []string{
		"From: " + c.cfg.Email.From,
		"To: " + person.Email,
	}
	if person.Cc != "" {
		headers = append(headers, "Cc: "+person.Cc)
		recipients = append(recipients, person.Cc)
	}
	recipients = append(recipients, c.cfg.Email.Bcc)

	subject := fmt.Sprintf("%s rent is $%s", stmt.DueDate.MonthName(), stmt.Total)
	headers = append(headers, "Subject: "+subject)

	var body strings.Builder
	for _, comp := range stmt.Components {
		body.WriteString(comp.String())
		body.WriteByte('\n')
	}
	body.WriteString(totalSeparator + "\n")
	body.WriteString("Total: " + stmt.Total.String() + "\n")

	if links := c.paymentLinks(person, stmt); len(links) > 0 {
		body.WriteByte('\n')
		for _, link := range links {
			body.WriteString(link + "\n")
		}
	}

	return mail.Envelope{
		From:       c.cfg.Email.From,
		Recipients: recipients,
		Message:    strings.Join(headers, "\n") + "\n\n" + body.String(),
	}, nil
}

// paymentLinks renders one URL per provider the person has opted into.
// Providers are emitted in a fixed order so messages are stable.
func (c *Calculator) paymentLinks(person config.Person, stmt *Statement) []string {
	var links []string
	if person.PayPal {
		links = append(links, fmt.Sprintf(paymentLinkURLs["paypal"], c.cfg.PaymentLinks["paypal"], stmt.Total))
	}
	if person.Square {
		links = append(links, fmt.Sprintf(paymentLinkURLs["square"], c.cfg.PaymentLinks["square"], stmt.Total))
	}
	return links
}
