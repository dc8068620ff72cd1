package booking

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Lookups shared by the booking use cases. Absent and deleted rows both
// become not_found_or_deleted; any other repository error is returned
// wrapped and uninterpreted.

func liveCustomer(ctx context.Context, repo domain.Repository, id uint) (*models.Customer, error) {
	c, err := repo.GetCustomer(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFoundOrDeleted("customer", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	if c.Lifecycle.IsDeleted() {
		return nil, domain.ErrNotFoundOrDeleted("customer", id)
	}
	return c, nil
}

func liveStylist(ctx context.Context, repo domain.Repository, id uint) (*models.Stylist, error) {
	s, err := repo.GetStylist(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFoundOrDeleted("stylist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get stylist %d: %w", id, err)
	}
	if s.Lifecycle.IsDeleted() {
		return nil, domain.ErrNotFoundOrDeleted("stylist", id)
	}
	return s, nil
}

func liveService(ctx context.Context, repo domain.Repository, id uint) (*models.Service, error) {
	s, err := repo.GetService(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFoundOrDeleted("service", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get service %d: %w", id, err)
	}
	if s.Lifecycle.IsDeleted() {
		return nil, domain.ErrNotFoundOrDeleted("service", id)
	}
	return s, nil
}
