package model

import "time"

// dateLayout is the wire and storage format for dates
const dateLayout = "2006-01-02"

// Date is a calendar day in ISO format (YYYY-MM-DD). The engine works at
// day granularity throughout; keeping dates as strings makes lexicographic
// order chronological order and the zero value the earliest possible date.
type Date string

// ParseDate validates a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// DateOf truncates a time to its calendar day
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d == ""
}

// Before reports whether d is strictly before other. An unset date sorts
// before every set date.
func (d Date) Before(other Date) bool {
	return d < other
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d > other
}

// Time converts the date to a UTC midnight time; unset dates return the
// zero time
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// String returns the ISO representation
func (d Date) String() string {
	return string(d)
}
