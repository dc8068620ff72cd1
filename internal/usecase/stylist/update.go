package stylist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	stylistdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/stylist"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// UpdateStylistInput leaves a field untouched when it is nil. Services and
// shifts are replaced as a whole.
type UpdateStylistInput struct {
	StaffID     *uint
	StylistID   uint
	Name        *string
	Description *string
	ServiceIDs  []uint
	Shifts      []string
}

type UpdateStylist struct {
	repo  stylistdomain.Repository
	audit audit.Sink
}

func NewUpdateStylist(
	repo stylistdomain.Repository,
	audit audit.Sink,
) *UpdateStylist {
	return &UpdateStylist{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStylist) Execute(
	ctx context.Context,
	in UpdateStylistInput,
) (*models.Stylist, error) {

	s, err := uc.repo.GetStylist(ctx, in.StylistID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFoundOrDeleted("stylist", in.StylistID)
	}
	if err != nil {
		return nil, fmt.Errorf("get stylist %d: %w", in.StylistID, err)
	}
	if s.Lifecycle.IsDeleted() {
		return nil, domain.ErrNotFoundOrDeleted("stylist", in.StylistID)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrMissingField("name")
		}
		s.Name = name
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}

	var shifts []models.Shift
	if in.Shifts != nil {
		if shifts, err = stylistdomain.BuildShifts(in.Shifts); err != nil {
			return nil, err
		}
	}

	var services []models.StylistService
	if in.ServiceIDs != nil {
		if services, err = loadOfferings(ctx, uc.repo, in.ServiceIDs); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateStylist(ctx, s, services, shifts); err != nil {
		return nil, fmt.Errorf("update stylist %d: %w", s.ID, err)
	}

	uc.audit.Dispatch(audit.Event{
		StaffID:  in.StaffID,
		Action:   "stylist_updated",
		Entity:   "stylist",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"shifts_replaced":   in.Shifts != nil,
			"services_replaced": in.ServiceIDs != nil,
		},
	})

	return s, nil
}
