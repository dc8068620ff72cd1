package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit audit.Sink
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit audit.Sink,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// WithClock sets the source of cancellation times.
func (uc *CancelBooking) WithClock(now func() time.Time) *CancelBooking {
	uc.now = now
	return uc
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrBookingNotFound(bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}

	if err := domain.Cancel(b, uc.now()); err != nil {
		return nil, err
	}

	// the store re-checks the transition so concurrent cancels succeed once
	updated, err := uc.repo.SetBookingStatus(ctx, b.ID, domain.StatusActive, domain.Status(b.Status), *b.CanceledAt)
	switch {
	case errors.Is(err, domain.ErrStatusChanged):
		return nil, domain.ErrAlreadyCanceled(b.ID)
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrBookingNotFound(b.ID)
	case err != nil:
		return nil, fmt.Errorf("cancel booking %d: %w", b.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_canceled",
		Entity:   "booking",
		EntityID: &updated.ID,
	})

	return updated, nil
}
