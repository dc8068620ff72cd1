package stylist

import (
	"context"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	stylistdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/stylist"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CreateStylistInput struct {
	StaffID     *uint
	Name        string
	Description string
	ServiceIDs  []uint
	Shifts      []string
}

type CreateStylist struct {
	repo  stylistdomain.Repository
	audit audit.Sink
}

func NewCreateStylist(
	repo stylistdomain.Repository,
	audit audit.Sink,
) *CreateStylist {
	return &CreateStylist{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateStylist) Execute(
	ctx context.Context,
	in CreateStylistInput,
) (*models.Stylist, error) {

	name := strings.TrimSpace(in.Name)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if in.ServiceIDs == nil {
		missing = append(missing, "service_ids")
	}
	if in.Shifts == nil {
		missing = append(missing, "shifts")
	}
	if len(missing) > 0 {
		return nil, domain.ErrMissingField(missing...)
	}

	shifts, err := stylistdomain.BuildShifts(in.Shifts)
	if err != nil {
		return nil, err
	}

	services, err := loadOfferings(ctx, uc.repo, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	s := &models.Stylist{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Services:    services,
		Shifts:      shifts,
		Lifecycle:   models.LifecycleActive,
	}

	if err := uc.repo.CreateStylist(ctx, s); err != nil {
		return nil, fmt.Errorf("create stylist: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		StaffID:  in.StaffID,
		Action:   "stylist_created",
		Entity:   "stylist",
		EntityID: &s.ID,
	})

	return s, nil
}

func loadOfferings(ctx context.Context, repo stylistdomain.Repository, ids []uint) ([]models.StylistService, error) {
	found, err := repo.ListServicesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return stylistdomain.BuildServices(ids, found)
}
