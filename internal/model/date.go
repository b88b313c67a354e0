package model

import "time"

const matchDateLayout = "2006-01-02"

// MatchDate identifies a single session day in YYYY-MM-DD form.
// The ISO layout makes lexicographic order equal to chronological order.
type MatchDate string

// ParseMatchDate validates and normalizes a date string
func ParseMatchDate(s string) (MatchDate, error) {
	t, err := time.Parse(matchDateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return MatchDate(t.Format(matchDateLayout)), nil
}

// Time returns the date as a time.Time at midnight UTC
func (d MatchDate) Time() time.Time {
	t, _ := time.Parse(matchDateLayout, string(d))
	return t
}

// AddDays returns the date shifted by the given number of calendar days
func (d MatchDate) AddDays(n int) MatchDate {
	return MatchDate(d.Time().AddDate(0, 0, n).Format(matchDateLayout))
}

// Previous returns the session date one week earlier.
// Rotation fairness keys off the calendar, not off whichever
// date happens to precede this one in the ledger.
func (d MatchDate) Previous() MatchDate {
	return d.AddDays(-7)
}

// Half represents one of the two playing periods of a session
type Half string

const (
	HalfFirst  Half = "first"
	HalfSecond Half = "second"
)

// ParseHalf validates a half identifier
func ParseHalf(s string) (Half, error) {
	switch Half(s) {
	case HalfFirst, HalfSecond:
		return Half(s), nil
	}
	return "", ErrInvalidHalf
}
