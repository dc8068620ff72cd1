package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	StylistID  uint
	ServiceID  uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Sink,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if missing := missingFields(in); len(missing) > 0 {
		return nil, domain.ErrMissingField(missing...)
	}

	// --------------------------------------------------
	// 2. Date / start time
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, domain.ErrInvalidFormat("start_time", in.StartTime, "HH:MM")
	}

	// --------------------------------------------------
	// 3. Customer, stylist, service
	// --------------------------------------------------
	if _, err := liveCustomer(ctx, uc.repo, in.CustomerID); err != nil {
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

	// --------------------------------------------------
	// 4. Offered service
	// --------------------------------------------------
	if !stylist.Offers(service.ID) {
		return nil, domain.ErrUnofferedService(stylist.ID, service.ID)
	}

	// --------------------------------------------------
	// 5. End time
	// --------------------------------------------------
	requested, err := domain.BookingInterval(start, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Shift windows
	// --------------------------------------------------
	windows, err := domain.ShiftWindowsOf(stylist)
	if err != nil {
		return nil, err
	}
	if !domain.WithinAnyShift(windows, requested) {
		return nil, domain.ErrOutsideShift(requested, domain.NearestShift(windows, requested))
	}

	draft, err := domain.NewDraft(in.CustomerID, stylist.ID, service.ID, date, requested)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7 + 8. Conflict check and commit, atomically
	// --------------------------------------------------
	var created *models.Booking
	err = uc.repo.WithinSlotLock(ctx, draft.StylistID(), draft.Date(), func(ctx context.Context, repo domain.Repository) error {
		// catalog may have changed since the checks above
		if err := recheckCatalog(ctx, repo, in.CustomerID, stylist.ID, service.ID); err != nil {
			return err
		}

		active, err := repo.ListActiveBookings(ctx, draft.StylistID(), draft.Date())
		if err != nil {
			return err
		}
		if err := domain.DetectConflict(draft.Interval(), active); err != nil {
			return err
		}

		b := draft.Model()
		if err := repo.CommitBooking(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, domain.CodeBookingConflict) {
			uc.audit.Dispatch(audit.Event{
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"stylist_id": stylist.ID,
					"date":       date.String(),
					"requested":  requested.String(),
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 9. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"stylist_id": stylist.ID,
			"date":       date.String(),
			"interval":   requested.String(),
		},
	})

	return created, nil
}

// recheckCatalog repeats the lifecycle and offering checks inside the slot
// lock, where catalog deletes cannot interleave.
func recheckCatalog(ctx context.Context, repo domain.Repository, customerID, stylistID, serviceID uint) error {
	if _, err := liveCustomer(ctx, repo, customerID); err != nil {
		return err
	}
	stylist, err := liveStylist(ctx, repo, stylistID)
	if err != nil {
		return err
	}
	if _, err := liveService(ctx, repo, serviceID); err != nil {
		return err
	}
	if !stylist.Offers(serviceID) {
		return domain.ErrUnofferedService(stylistID, serviceID)
	}
	return nil
}

func missingFields(in CreateBookingInput) []string {
	var missing []string
	if in.CustomerID == 0 {
		missing = append(missing, "customer_id")
	}
	if in.StylistID == 0 {
		missing = append(missing, "stylist_id")
	}
	if in.ServiceID == 0 {
		missing = append(missing, "service_id")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if in.StartTime == "" {
		missing = append(missing, "start_time")
	}
	return missing
}
