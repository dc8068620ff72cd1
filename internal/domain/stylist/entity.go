package stylist

import (
	"sort"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// BuildShifts validates a full shift set and renders it as rows, keeping
// the submitted order.
func BuildShifts(tokens []string) ([]models.Shift, error) {
	windows, err := booking.ValidateShiftWindows(tokens)
	if err != nil {
		return nil, err
	}

	shifts := make([]models.Shift, 0, len(windows))
	for i, w := range windows {
		shifts = append(shifts, models.Shift{
			StartMinute: w.Start.Minutes(),
			EndMinute:   w.End.Minutes(),
			Position:    i,
		})
	}
	return shifts, nil
}

// BuildServices checks that every requested service exists and is not
// deleted. found holds the rows the store returned for requested.
func BuildServices(requested []uint, found []models.Service) ([]models.StylistService, error) {
	byID := make(map[uint]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	var missing, deleted []uint
	seen := make(map[uint]bool, len(requested))
	out := make([]models.StylistService, 0, len(requested))

	for _, id := range requested {
		if seen[id] {
			continue
		}
		seen[id] = true

		s, ok := byID[id]
		switch {
		case !ok:
			missing = append(missing, id)
		case s.Lifecycle.IsDeleted():
			deleted = append(deleted, id)
		default:
			out = append(out, models.StylistService{ServiceID: id})
		}
	}

	if len(missing) > 0 || len(deleted) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		sort.Slice(deleted, func(i, j int) bool { return deleted[i] < deleted[j] })
		return nil, httperr.ErrBusinessWith(
			httperr.KindNotFound,
			booking.CodeNotFoundOrDeleted,
			"Some services do not exist or were deleted.",
			map[string]any{
				"entity":      "service",
				"missing_ids": missing,
				"deleted_ids": deleted,
			},
		)
	}

	return out, nil
}

// ShiftTokens renders stored shifts back into HH:MM-HH:MM tokens.
func ShiftTokens(s *models.Stylist) []string {
	windows, err := booking.ShiftWindowsOf(s)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.String())
	}
	return out
}
