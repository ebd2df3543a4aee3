package value

import (
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// UnixDateWithEarlyYear is a layout seen in the wild that the other parsers
// used by ParseTime do not handle.
const UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"

// Date is the Date field.
type Date struct {
	t time.Time
}

// NewDate returns a Date value for t.
func NewDate(t time.Time) Date {
	return Date{t}
}

// ParseDate parses a Date body with ParseTime.
func ParseDate(body string) (Date, error) {
	t, err := ParseTime(body)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// ParseTime parses a date in any of the formats found in headers. It tries
// the RFC 5322 format first, then the HTTP-date formats, then whatever
// github.com/araddon/dateparse can make of it, and finally
// UnixDateWithEarlyYear.
func ParseTime(body string) (time.Time, error) {
	if t, err := mail.ParseDate(body); err == nil {
		return t, nil
	}

	if t, err := http.ParseTime(body); err == nil {
		return t, nil
	}

	if t, err := dateparse.ParseAny(body); err == nil {
		return t, nil
	}

	if t, err := time.Parse(UnixDateWithEarlyYear, body); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("time string %q cannot be parsed", body)
}

// Time returns the date.
func (v Date) Time() time.Time { return v.t }

// Name returns DateName.
func (Date) Name() string { return DateName }

// Value returns the date as an HTTP-date, e.g.
// "Sat, 31 Jan 2015 03:23:09 GMT".
func (v Date) Value() string { return v.t.UTC().Format(http.TimeFormat) }

// Kind returns KindDate.
func (Date) Kind() Kind { return KindDate }

// String returns the wire line.
func (v Date) String() string { return Render(v) }

func (Date) isValue() {}
