package booking

import "strings"

// Interval is a half-open [Start, End) range within one day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval enforces Start < End.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidFormat("interval", start.String()+"-"+end.String(), "start before end")
	}
	return Interval{Start: start, End: end}, nil
}

// IntervalFromMinutes rebuilds an interval from stored minute bounds.
func IntervalFromMinutes(start, end int) (Interval, error) {
	s, err := FromMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := FromMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

// ParseShiftToken accepts exactly "HH:MM-HH:MM" with start before end.
func ParseShiftToken(s string) (Interval, error) {
	invalid := ErrInvalidFormat("shift", s, "HH:MM-HH:MM with start before end")

	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, invalid
	}
	start, ok := parseHHMM(left)
	if !ok {
		return Interval{}, invalid
	}
	end, ok := parseHHMM(right)
	if !ok {
		return Interval{}, invalid
	}
	if start >= end {
		return Interval{}, invalid
	}

	return Interval{Start: TimeOfDay{min: start}, End: TimeOfDay{min: end}}, nil
}

// Conflicts reports whether a and b overlap. Touching endpoints do not.
func Conflicts(a, b Interval) bool {
	return a.Start.min < b.End.min && b.Start.min < a.End.min
}

// Contains reports whether iv lies fully inside window.
func Contains(window, iv Interval) bool {
	return window.Start.min <= iv.Start.min && iv.End.min <= window.End.min
}

func (i Interval) Duration() int {
	return i.End.min - i.Start.min
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}
