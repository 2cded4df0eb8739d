package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"affitto/internal/mail"
)

// Runner generates a statement for every configured person and hands each
// envelope to the sender. One person's failure does not abort the batch:
// failures are collected and reported together at the end.
type Runner struct {
	calc   *Calculator
	sender mail.Sender
}

func NewRunner(calc *Calculator, sender mail.Sender) *Runner {
	return &Runner{calc: calc, sender: sender}
}

// Run processes every person in name order and returns the joined errors,
// if any.
func (r *Runner) Run(ctx context.Context) error {
	names := make([]string, 0, len(r.calc.cfg.People))
	for name := range r.calc.cfg.People {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		slog.InfoContext(ctx, "Generating statement", "person", name)

		env, err := r.calc.Envelope(name)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to compose statement", "person", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		if err := r.sender.Send(ctx, env); err != nil {
			slog.ErrorContext(ctx, "Failed to hand statement to transport", "person", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		slog.InfoContext(ctx, "Statement handed to transport",
			"person", name,
			"due_date", r.calc.DueDate().ISO(),
			"recipients", len(env.Recipients))
	}
	return errors.Join(errs...)
}
