package booking

import "strconv"

// EndTime derives the end of a booking from its start and the service
// duration. Bookings may end at 24:00 at the latest.
func EndTime(start TimeOfDay, durationMin int) (TimeOfDay, error) {
	if durationMin <= 0 {
		return TimeOfDay{}, ErrInvalidFormat("duration", strconv.Itoa(durationMin), "a positive number of minutes")
	}

	end := start.min + durationMin
	if end > MinutesPerDay {
		return TimeOfDay{}, ErrOutOfRange(start, durationMin)
	}
	return TimeOfDay{min: end}, nil
}

// BookingInterval combines start and duration into the booked interval.
func BookingInterval(start TimeOfDay, durationMin int) (Interval, error) {
	end, err := EndTime(start, durationMin)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
