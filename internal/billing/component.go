// Package billing implements the monthly rent/utility split: resolving the
// rent schedule in effect on the due date, dividing the billing month's
// utilities among all payers, and composing per-person itemized statements.
package billing

import (
	"fmt"

	"affitto/internal/core"
)

// Component is one line of a statement: a labeled amount divided among a
// number of payers. Payers == 1 means the amount is not shared (rent);
// utilities carry the full payer count.
type Component struct {
	Label  string
	Total  core.Money
	Payers int
}

// NewComponent builds a component. Payers below 1 is an input error.
func NewComponent(label string, total core.Money, payers int) (Component, error) {
	if payers < 1 {
		return Component{}, fmt.Errorf("component %q: divided among %d payers", label, payers)
	}
	return Component{Label: label, Total: total, Payers: payers}, nil
}

// ShareCents is this payer's portion in cents, rounded half-up. Display
// only: statement totals are computed from the exact fractions so that
// sub-cent remainders never drift.
func (c Component) ShareCents() int64 {
	return core.RoundDiv(c.Total.Cents, int64(c.Payers))
}

// String renders the statement line. The divisor is preserved when the
// amount is shared so the recipient can verify the split.
//
//	"Rent: 1000.00"
//	"Electric: 30.00 = 90.00 / 3"
func (c Component) String() string {
	if c.Payers == 1 {
		return fmt.Sprintf("%s: %s", c.Label, c.Total)
	}
	return fmt.Sprintf("%s: %s = %s / %d", c.Label, core.FormatCents(c.ShareCents()), c.Total, c.Payers)
}

// sumShares adds the exact (unrounded) shares of the components and rounds
// half-up once at the end. Fractions are kept over a common denominator so
// the result equals the algebraic sum regardless of how the divisors fall.
func sumShares(comps []Component) core.Money {
	num, den := int64(0), int64(1)
	for _, c := range comps {
		p := int64(c.Payers)
		num = num*p + c.Total.Cents*den
		den *= p
		if g := gcd(num, den); g > 1 {
			num /= g
			den /= g
		}
	}
	return core.Money{Cents: core.RoundDiv(num, den)}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
