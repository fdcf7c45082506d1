package transfer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrInvalidDate      = errors.New("invalid date")
)

const (
	// TimeLayout is the wire format for times of day (24-hour).
	TimeLayout = "15:04"
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

// ClockTime is a validated time of day with minute precision.
type ClockTime struct {
	hour   int
	minute int
}

// clockTimePattern matches 24-hour "HH:MM" with an optional leading zero,
// the shapes HTML time inputs emit.
var clockTimePattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// NewClockTime parses a 24-hour "HH:MM" time of day.
func NewClockTime(value string) (ClockTime, error) {
	m := clockTimePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, value)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return ClockTime{hour: hour, minute: minute}, nil
}

func MustClockTime(value string) ClockTime {
	ct, err := NewClockTime(value)
	if err != nil {
		panic(err)
	}
	return ct
}

func (c ClockTime) Hour() int {
	return c.hour
}

func (c ClockTime) Minute() int {
	return c.minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// On anchors the clock time onto a calendar date.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.hour, c.minute, 0, 0, date.Location())
}

// HourInterval is a time-of-day window truncated to the hour. Intervals
// whose start is later than their end wrap past midnight (22:00-06:00).
type HourInterval struct {
	Start ClockTime
	End   ClockTime
}

func NewHourInterval(start, end ClockTime) HourInterval {
	return HourInterval{Start: start, End: end}
}

// Contains reports whether the given hour falls inside the interval.
// Both endpoints are inclusive.
func (i HourInterval) Contains(hour int) bool {
	if i.Start.hour <= i.End.hour {
		return hour >= i.Start.hour && hour <= i.End.hour
	}
	// Overnight window.
	return hour >= i.Start.hour || hour <= i.End.hour
}

func (i HourInterval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return d, nil
}

// truncateToDay drops the time-of-day component, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
