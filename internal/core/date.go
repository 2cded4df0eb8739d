package core

import "time"

// Date is a calendar day at UTC midnight.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return NewDate(y, int(m), d)
}

// FirstOfNextMonth returns the first calendar day of the month after d.
// December rolls over to January of the next year.
func (d Date) FirstOfNextMonth() Date {
	if d.Month() == time.December {
		return NewDate(d.Year()+1, 1, 1)
	}
	return NewDate(d.Year(), int(d.Month())+1, 1)
}

// MonthName returns the full English month name, e.g. "January".
func (d Date) MonthName() string {
	return d.Month().String()
}

// YearMonth formats the date as "YYYY-MM".
func (d Date) YearMonth() string {
	return d.Format("2006-01")
}

// ISO formats the date as "YYYY-MM-DD".
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}
