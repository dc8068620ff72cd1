package booking

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// DetectConflict checks candidate against bookings the store reported as
// active for the same stylist and date. It does not look at status.
func DetectConflict(candidate Interval, active []models.Booking) error {
	for i := range active {
		iv, err := IntervalOf(&active[i])
		if err != nil {
			return err
		}
		if Conflicts(candidate, iv) {
			return ErrBookingConflict(candidate, active[i].ID)
		}
	}
	return nil
}
