package booking

import "fmt"

// MinutesPerDay is the exclusive upper bound of a TimeOfDay and the
// latest instant a booking may end at.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time as minutes since midnight.
// The zero value is 00:00.
type TimeOfDay struct {
	min int
}

// ParseTimeOfDay accepts exactly "HH:MM" in 24-hour notation.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m, ok := parseHHMM(s)
	if !ok {
		return TimeOfDay{}, ErrInvalidFormat("time", s, "HH:MM")
	}
	return TimeOfDay{min: m}, nil
}

// FromMinutes rebuilds a TimeOfDay from a stored minute count. 1440 is
// accepted as the end-of-day bound.
func FromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m > MinutesPerDay {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", m)
	}
	return TimeOfDay{min: m}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.min
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.min < o.min
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.min/60, t.min%60)
}

func parseHHMM(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
