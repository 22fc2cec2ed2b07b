package event

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDateTime is returned when a string does not follow the D-M-YYYY Hmm pattern
// or names a date that does not exist.
var ErrInvalidDateTime = errors.New("the date & time needs to be in the following format: DD-MM-YYYY hhmm " +
	"(0s can be omitted where no ambiguity is created, e.g. 5-5-2021 instead of 05-05-2021)")

const (
	displayLayout = "Jan 2 2006 03:04PM"
	inputLayout   = "2-1-2006 1504"
)

var inputPattern = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4}) (\d{1,2})(\d{2})$`)

// DateTime is a minute-precision calendar date and time, stored in UTC.
// The zero value is not a valid DateTime; use Parse.
type DateTime struct {
	value time.Time
}

// Parse reads s in the D-M-YYYY Hmm format, e.g. "5-5-2021 0930" or "15-12-2021 930".
func Parse(s string) (DateTime, error) {
	m := inputPattern.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	if month < 1 || month > 12 || hour > 23 || minute > 59 {
		return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	value := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (31-2 becomes 3-3); reject those.
	if value.Day() != day || value.Month() != time.Month(month) {
		return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
	}

	return DateTime{value: value}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) DateTime {
	dt, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// IsValid reports whether s would be accepted by Parse.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromTime truncates t to the minute and converts it to UTC.
func FromTime(t time.Time) DateTime {
	return DateTime{value: t.UTC().Truncate(time.Minute)}
}

// Time returns the underlying instant.
func (d DateTime) Time() time.Time {
	return d.value
}

// Date returns the calendar date portion at midnight UTC.
func (d DateTime) Date() time.Time {
	return time.Date(d.value.Year(), d.value.Month(), d.value.Day(), 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d was never set.
func (d DateTime) IsZero() bool {
	return d.value.IsZero()
}

// Equal reports whether both values denote the same instant.
func (d DateTime) Equal(other DateTime) bool {
	return d.value.Equal(other.value)
}

// Before reports whether d is earlier than other.
func (d DateTime) Before(other DateTime) bool {
	return d.value.Before(other.value)
}

// Input renders d in the canonical parse format, e.g. "5-5-2021 0930".
func (d DateTime) Input() string {
	return d.value.Format(inputLayout)
}

// String renders d for display, e.g. "May 5 2021 09:30AM".
func (d DateTime) String() string {
	return d.value.Format(displayLayout)
}
