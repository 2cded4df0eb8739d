// Package core holds the money and date primitives shared by the billing
// calculation. Amounts are fixed-point cents; no float arithmetic touches
// money anywhere in the module.
package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount reports a monetary value that could not be parsed or
// is out of range (negative or zero).
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a positive monetary amount in cents of the account currency.
type Money struct {
	Cents int64
}

// ParseMoney converts a decimal string to Money with half-up rounding on
// the third decimal place. It accepts both dot (12.34) and comma (12,34)
// separators. Returns ErrInvalidAmount for malformed input, negative
// values, or zero.
//
// Examples:
//
//	ParseMoney("1200")   -> 120000 cents
//	ParseMoney("12,34")  -> 1234 cents
//	ParseMoney("12.345") -> 1235 cents (rounds up)
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return Money{}, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return Money{}, ErrInvalidAmount
	}

	// First two fractional digits are cents; the third decides half-up.
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
	}
	if len(fracPart) > 1 {
		frac += int64(fracPart[1] - '0')
	}
	if len(fracPart) > 2 && fracPart[2] >= '5' {
		frac++
	}

	cents := iv*100 + frac
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// Validate reports whether the amount is usable in a statement.
func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// String renders the amount with two decimals and no currency symbol,
// e.g. "1040.00". This is the format used in statement bodies, subjects
// and payment links.
func (m Money) String() string {
	return FormatCents(m.Cents)
}

// FormatCents renders a cent count with two decimals, e.g. 123450 -> "1234.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// RoundDiv divides num by den with half-up rounding. den must be positive
// and num non-negative.
func RoundDiv(num, den int64) int64 {
	return (num + den/2) / den
}
