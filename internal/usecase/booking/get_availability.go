package booking

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type AvailabilityInput struct {
	StylistID uint
	ServiceID uint
	Date      string
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]dto.SlotDTO, error) {

	var missing []string
	if in.StylistID == 0 {
		missing = append(missing, "stylist_id")
	}
	if in.ServiceID == 0 {
		missing = append(missing, "service_id")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, domain.ErrMissingField(missing...)
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	stylist, err := liveStylist(ctx, uc.repo, in.StylistID)
	if err != nil {
		return nil, err
	}

	service, err := liveService(ctx, uc.repo, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if !stylist.Offers(service.ID) {
		return nil, domain.ErrUnofferedService(stylist.ID, service.ID)
	}

	windows, err := domain.ShiftWindowsOf(stylist)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.ListActiveBookings(ctx, stylist.ID, date)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	busy := make([]domain.Interval, 0, len(active))
	for i := range active {
		iv, err := domain.IntervalOf(&active[i])
		if err != nil {
			return nil, err
		}
		busy = append(busy, iv)
	}

	return dto.FromSlots(domain.FreeSlots(windows, busy, service.DurationMin)), nil
}
