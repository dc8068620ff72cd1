package booking

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrBookingNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	return b, nil
}
