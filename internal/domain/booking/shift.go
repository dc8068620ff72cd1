package booking

// ValidateShiftWindows parses a stylist's full shift set. Parsing stops at
// the first malformed token; afterwards every pair is compared, so the
// result does not depend on token order.
func ValidateShiftWindows(tokens []string) ([]Interval, error) {
	windows := make([]Interval, 0, len(tokens))
	for _, tok := range tokens {
		w, err := ParseShiftToken(tok)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}

	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if Conflicts(windows[i], windows[j]) {
				return nil, ErrOverlappingShifts(windows[i], windows[j])
			}
		}
	}

	return windows, nil
}

// WithinAnyShift reports whether iv fits inside one of windows.
func WithinAnyShift(windows []Interval, iv Interval) bool {
	for _, w := range windows {
		if Contains(w, iv) {
			return true
		}
	}
	return false
}

// NearestShift returns the window closest to iv: an overlapping window if
// there is one, otherwise the one with the smallest gap. Nil when there are
// no windows.
func NearestShift(windows []Interval, iv Interval) *Interval {
	var (
		best    *Interval
		bestGap int
	)
	for i := range windows {
		gap := gapBetween(windows[i], iv)
		if best == nil || gap < bestGap {
			best = &windows[i]
			bestGap = gap
		}
	}
	return best
}

func gapBetween(a, b Interval) int {
	switch {
	case Conflicts(a, b):
		return 0
	case a.End.min <= b.Start.min:
		return b.Start.min - a.End.min
	default:
		return a.Start.min - b.End.min
	}
}
