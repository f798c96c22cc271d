// Package types implements calendar types used by the tracker.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	return NewMonth(t.Year(), t.Month())
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
//
// This is also the label month snapshots are stored with.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Month())
}

// ShortName returns the abbreviated English month name, e.g. "Mar".
func (m Month) ShortName() string {
	return m.Month().String()[:3]
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Month) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	return m.UnmarshalParam(s)
}

// UnmarshalParam implements gin's BindUnmarshaler for "YYYY-MM" query parameters.
// An empty parameter is the zero Month.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	parsed, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the month of the year.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return m.Year() == n.Year() && m.Month() == n.Month()
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year() && t.Month() == m.Month()
}

// Start returns midnight UTC of the first day of the month.
func (m Month) Start() time.Time {
	return time.Time(NewMonth(m.Year(), m.Month()))
}

// End returns the first instant of the following month. It is exclusive.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Days returns the number of calendar days of the month.
func (m Month) Days() int {
	return m.End().AddDate(0, 0, -1).Day()
}

// Day returns the date of day d of the month.
func (m Month) Day(d int) time.Time {
	return m.Start().AddDate(0, 0, d-1)
}

// Quarter returns the quarter the month belongs to.
func (m Month) Quarter() Quarter {
	return QuarterOf(m.Start())
}

// MonthsOfYearUntil returns January through m of m's year, in order.
func MonthsOfYearUntil(m Month) []Month {
	months := make([]Month, 0, int(m.Month()))
	for i := time.January; i <= m.Month(); i++ {
		months = append(months, NewMonth(m.Year(), i))
	}

	return months
}

// TrailingMonths returns the n months ending with m, oldest first.
func TrailingMonths(m Month, n int) []Month {
	months := make([]Month, 0, n)

	// Month arithmetic is done on a zero based month index so that
	// the window crosses year boundaries correctly
	index := m.Year()*12 + int(m.Month()) - 1
	for i := index - n + 1; i <= index; i++ {
		months = append(months, NewMonth(i/12, time.Month(i%12+1)))
	}

	return months
}
