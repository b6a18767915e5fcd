package models

import (
	"fmt"
	"strings"
)

// TimeWindow restricts search results to listings posted within a fixed
// period. The zero value means no restriction.
type TimeWindow int

const (
	WindowAny TimeWindow = iota
	WindowDay
	WindowWeek
	WindowMonth
)

// ParseTimeWindow maps a user-supplied window name onto a TimeWindow.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "anytime":
		return WindowAny, nil
	case "day", "24h", "past-24-hours":
		return WindowDay, nil
	case "week", "past-week":
		return WindowWeek, nil
	case "month", "past-month":
		return WindowMonth, nil
	}
	return WindowAny, fmt.Errorf("unknown time window %q (want day, week, month or any)", s)
}

func (w TimeWindow) String() string {
	switch w {
	case WindowDay:
		return "day"
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	default:
		return "any"
	}
}

// SearchQuery describes one job-title search. Immutable once built.
type SearchQuery struct {
	Keywords string
	Location string
	Window   TimeWindow
	MaxPages int
}
