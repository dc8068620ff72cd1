package booking

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

// Execute lists the bookings of a stylist on a date, canceled ones
// included. Deleted stylists keep their history visible.
func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	stylistID uint,
	dateStr string,
) ([]dto.BookingListDTO, error) {

	if stylistID == 0 {
		return nil, domain.ErrMissingField("stylist_id")
	}
	if dateStr == "" {
		return nil, domain.ErrMissingField("date")
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetStylist(ctx, stylistID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFoundOrDeleted("stylist", stylistID)
		}
		return nil, fmt.Errorf("get stylist %d: %w", stylistID, err)
	}

	bookings, err := uc.repo.ListBookings(ctx, stylistID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, dto.BookingListDTO{
			BookingDTO:   dto.FromBooking(&bookings[i]),
			CustomerName: bookings[i].Customer.Name,
			ServiceName:  bookings[i].Service.Name,
		})
	}

	return out, nil
}
