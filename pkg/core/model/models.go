package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with day granularity. It marshals to and from
// the 2006-01-02 wire format used by the locker API.
type Date struct {
	time.Time
}

// ParseDate parses a date in the 2006-01-02 wire format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: not a JSON string", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Locker represents a physical storage unit. UserID is nil while the
// locker is unassigned; EndDate is only meaningful when UserID is set.
type Locker struct {
	ID      int64
	Area    string
	Type    string
	UserID  *int64
	EndDate *Date
}

// Assigned reports whether the locker is currently occupied.
func (l Locker) Assigned() bool {
	return l.UserID != nil
}

// Person represents an individual eligible for locker assignment.
type Person struct {
	ID        int64
	Name      string
	StartDate Date
	EndDate   Date
	Email     string
	Rota      string // group/room label, display only
}

// Allocation is a session-local record of a confirmed assignment. Locker
// and Person point at the store's entries rather than copies.
type Allocation struct {
	ID            string
	Locker        *Locker
	Person        *Person
	DateAllocated Date
}
