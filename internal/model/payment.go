package model

import (
	"time"
)

// PaymentStatus is the derived standing of a player for a billing period
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending" // before the period's cutoff
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Period is a monthly billing window in YYYY-MM form
type Period string

// ParsePeriod validates a billing period string
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", ErrInvalidPeriod
	}
	return Period(t.Format("2006-01")), nil
}

// PeriodOf returns the billing period a match date falls in
func PeriodOf(date MatchDate) Period {
	return Period(string(date)[:7])
}

// Start returns midnight UTC on the first day of the period
func (p Period) Start() time.Time {
	t, _ := time.Parse("2006-01", string(p))
	return t
}

// PaymentRecord is one monthly fee payment in the finance ledger
type PaymentRecord struct {
	Period Period
	Handle Handle
	Amount int // cents
	PaidAt time.Time
}
