package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository is everything the booking use cases need from storage.
// Missing rows are reported as ErrNotFound.
type Repository interface {
	// -------- Catalog --------
	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	// GetStylist preloads offered services and shifts.
	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Bookings (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListActiveBookings(
		ctx context.Context,
		stylistID uint,
		date Date,
	) ([]models.Booking, error)

	// ListBookings returns bookings of every status, with customer and
	// service preloaded.
	ListBookings(
		ctx context.Context,
		stylistID uint,
		date Date,
	) ([]models.Booking, error)

	// -------- Bookings (write) --------

	// CommitBooking inserts b and fills its id. A collision detected by
	// the store itself is reported as a booking_conflict error.
	CommitBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// SetBookingStatus moves a booking from one status to another. When
	// the booking is no longer in `from` it returns the current row with
	// ErrStatusChanged.
	SetBookingStatus(
		ctx context.Context,
		id uint,
		from Status,
		to Status,
		at time.Time,
	) (*models.Booking, error)

	// WithinSlotLock runs fn with a repository bound to a unit of work
	// that is exclusive for (stylistID, date) against other callers of
	// WithinSlotLock. fn's error aborts the unit of work.
	WithinSlotLock(
		ctx context.Context,
		stylistID uint,
		date Date,
		fn func(ctx context.Context, repo Repository) error,
	) error
}
