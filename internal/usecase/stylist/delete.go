package stylist

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	stylistdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/stylist"
)

type DeleteStylist struct {
	repo  stylistdomain.Repository
	audit audit.Sink
}

func NewDeleteStylist(
	repo stylistdomain.Repository,
	audit audit.Sink,
) *DeleteStylist {
	return &DeleteStylist{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft deletes a stylist that has no active bookings left. It
// holds the stylist lock so no booking can be committed in between.
func (uc *DeleteStylist) Execute(
	ctx context.Context,
	staffID *uint,
	stylistID uint,
) error {

	err := uc.repo.WithinStylistLock(ctx, stylistID, func(ctx context.Context, repo stylistdomain.Repository) error {
		s, err := repo.GetStylist(ctx, stylistID)
		if err != nil {
			return err
		}
		if s.Lifecycle.IsDeleted() {
			return domain.ErrNotFoundOrDeleted("stylist", stylistID)
		}

		busy, err := repo.HasActiveBookings(ctx, stylistID)
		if err != nil {
			return fmt.Errorf("check bookings of stylist %d: %w", stylistID, err)
		}
		if busy {
			return domain.ErrHasActiveBookings("stylist", stylistID)
		}

		return repo.MarkDeleted(ctx, stylistID)
	})
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFoundOrDeleted("stylist", stylistID)
	}
	if err != nil {
		return fmt.Errorf("delete stylist %d: %w", stylistID, err)
	}

	uc.audit.Dispatch(audit.Event{
		StaffID:  staffID,
		Action:   "stylist_deleted",
		Entity:   "stylist",
		EntityID: &stylistID,
	})

	return nil
}
