package stylist

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository persists stylists together with the shift windows and
// service offerings they own. Missing rows are reported as
// booking.ErrNotFound.
type Repository interface {
	GetStylist(ctx context.Context, id uint) (*models.Stylist, error)

	ListServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error)

	// CreateStylist inserts the stylist with its Services and Shifts.
	CreateStylist(ctx context.Context, s *models.Stylist) error

	// UpdateStylist saves name and description, and replaces the
	// services and/or shifts wholesale when the matching slice is non-nil.
	UpdateStylist(
		ctx context.Context,
		s *models.Stylist,
		services []models.StylistService,
		shifts []models.Shift,
	) error

	HasActiveBookings(ctx context.Context, stylistID uint) (bool, error)

	MarkDeleted(ctx context.Context, id uint) error

	// WithinStylistLock runs fn with a repository bound to a unit of work
	// holding the same stylist lock booking creation takes. Missing
	// stylists are reported as booking.ErrNotFound.
	WithinStylistLock(
		ctx context.Context,
		id uint,
		fn func(ctx context.Context, repo Repository) error,
	) error
}
