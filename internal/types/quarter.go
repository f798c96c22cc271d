package types

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Quarter is one quarter of a year, numbered 1 to 4.
type Quarter struct {
	Year   int
	Number int
}

var quarterPattern = regexp.MustCompile(`^([0-9]{1,9})Q([0-9])$`)

// QuarterOf returns the quarter a time falls into.
func QuarterOf(t time.Time) Quarter {
	return Quarter{
		Year:   t.Year(),
		Number: (int(t.Month()) + 2) / 3,
	}
}

// ParseQuarter parses a label in the "<year>Q<n>" format.
//
// Years from 0 to 999999999 are supported without padding, which makes
// ParseQuarter accept every label String returns for these years.
//
// The second return value is false for malformed labels and for quarter
// numbers outside of 1 to 4.
func ParseQuarter(label string) (Quarter, bool) {
	match := quarterPattern.FindStringSubmatch(label)
	if match == nil {
		return Quarter{}, false
	}

	// The pattern only allows up to nine digits, so these conversions cannot fail
	year, _ := strconv.Atoi(match[1])
	number, _ := strconv.Atoi(match[2])
	if number < 1 || number > 4 {
		return Quarter{}, false
	}

	return Quarter{Year: year, Number: number}, true
}

// String returns the quarter label, e.g. "2024Q3".
func (q Quarter) String() string {
	return fmt.Sprintf("%dQ%d", q.Year, q.Number)
}

// FirstMonth returns the first month of the quarter.
func (q Quarter) FirstMonth() Month {
	return NewMonth(q.Year, time.Month((q.Number-1)*3+1))
}

// Start returns the first day of the quarter.
func (q Quarter) Start() time.Time {
	return q.FirstMonth().Start()
}

// End returns the last calendar day of the quarter.
func (q Quarter) End() time.Time {
	return q.FirstMonth().AddDate(0, 3).Start().AddDate(0, 0, -1)
}

// QuarterLabel returns the label of the quarter the date falls into.
func QuarterLabel(date time.Time) string {
	return QuarterOf(date).String()
}

// QuarterDateRange resolves a quarter label into the first and the last
// calendar day of that quarter.
//
// ok is false if the label cannot be resolved. This is not an error, callers
// decide how to treat unresolvable labels.
func QuarterDateRange(label string) (start, end time.Time, ok bool) {
	q, ok := ParseQuarter(label)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	return q.Start(), q.End(), true
}
