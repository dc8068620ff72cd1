package booking

// FreeSlots lists the start-aligned slots of durationMin minutes inside each
// shift window that do not conflict with busy. Slots advance by the
// duration from the start of each window.
func FreeSlots(windows []Interval, busy []Interval, durationMin int) []Interval {
	slots := []Interval{}
	if durationMin <= 0 {
		return slots
	}

	for _, w := range windows {
		for cur := w.Start.min; cur+durationMin <= w.End.min; cur += durationMin {
			slot := Interval{Start: TimeOfDay{min: cur}, End: TimeOfDay{min: cur + durationMin}}

			taken := false
			for _, b := range busy {
				if Conflicts(slot, b) {
					taken = true
					break
				}
			}
			if !taken {
				slots = append(slots, slot)
			}
		}
	}

	return slots
}
