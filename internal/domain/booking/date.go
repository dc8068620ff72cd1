package booking

import "time"

// DateLayout is the single calendar format accepted and stored for bookings.
const DateLayout = "2006-01-02"

// Date is a calendar day without time or zone.
// The zero value is an unset date.
type Date struct {
	t   time.Time
	set bool
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return Date{}, ErrInvalidFormat("date", s, "YYYY-MM-DD")
	}
	return Date{t: t, set: true}, nil
}

// IsZero reports whether d was never parsed. 0001-01-01 is a valid date.
func (d Date) IsZero() bool {
	return !d.set
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
