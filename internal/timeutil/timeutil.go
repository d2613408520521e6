package timeutil

import (
	"fmt"
	"time"
)

// Dates travel as "2006-01-02" and clock times as "15:04" strings throughout
// the system. Zero-padded, so lexical order is chronological order, in Go and
// in SQL alike.

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// AddToClock returns clock + minutes, still within the same day. A result at
// or past midnight is an error: slots never span two dates.
func AddToClock(clock string, minutes int) (string, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return "", err
	}

	total := t.Hour()*60 + t.Minute() + minutes
	if total >= 24*60 {
		return "", fmt.Errorf("clock %s + %dmin crosses midnight", clock, minutes)
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

func Today() string {
	return time.Now().Format(DateLayout)
}
