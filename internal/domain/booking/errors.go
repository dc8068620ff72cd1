package booking

import (
	"errors"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Error codes
// ===============================

const (
	CodeMissingField      = "missing_field"
	CodeInvalidFormat     = "invalid_format"
	CodeNotFoundOrDeleted = "not_found_or_deleted"
	CodeNotFound          = "not_found"
	CodeUnofferedService  = "unoffered_service"
	CodeOutOfRange        = "out_of_range"
	CodeOutsideShift      = "outside_shift"
	CodeOverlappingShifts = "overlapping_shifts"
	CodeBookingConflict   = "booking_conflict"
	CodeAlreadyCanceled   = "already_canceled"
	CodeHasActiveBookings = "has_active_bookings"
)

// ErrNotFound is returned by repositories when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ErrStatusChanged is returned by SetBookingStatus when the booking left the
// expected status before the update.
var ErrStatusChanged = errors.New("booking status changed")

// ===============================
// Constructors
// ===============================

func ErrMissingField(fields ...string) error {
	return httperr.ErrBusinessWith(
		httperr.KindValidation,
		CodeMissingField,
		"Required field missing: "+strings.Join(fields, ", ")+".",
		map[string]any{"fields": fields},
	)
}

func ErrInvalidFormat(field, value, expected string) error {
	return httperr.ErrBusinessWith(
		httperr.KindValidation,
		CodeInvalidFormat,
		"Invalid "+field+" \""+value+"\", expected "+expected+".",
		map[string]any{"field": field, "value": value, "expected": expected},
	)
}

func ErrNotFoundOrDeleted(entity string, id any) error {
	return httperr.ErrBusinessWith(
		httperr.KindNotFound,
		CodeNotFoundOrDeleted,
		"The "+entity+" does not exist or was deleted.",
		map[string]any{"entity": entity, "id": id},
	)
}

func ErrBookingNotFound(id uint) error {
	return httperr.ErrBusinessWith(
		httperr.KindNotFound,
		CodeNotFound,
		"Booking not found.",
		map[string]any{"entity": "booking", "id": id},
	)
}

func ErrUnofferedService(stylistID, serviceID uint) error {
	return httperr.ErrBusinessWith(
		httperr.KindValidation,
		CodeUnofferedService,
		"The stylist does not offer the selected service.",
		map[string]any{"stylist_id": stylistID, "service_id": serviceID},
	)
}

func ErrOutOfRange(start TimeOfDay, durationMin int) error {
	return httperr.ErrBusinessWith(
		httperr.KindValidation,
		CodeOutOfRange,
		"The booking must end on the same day.",
		map[string]any{
			"start":        start.String(),
			"duration_min": durationMin,
			"end_minute":   start.Minutes() + durationMin,
		},
	)
}

func ErrOutsideShift(requested Interval, nearest *Interval) error {
	details := map[string]any{"requested": requested.String()}
	if nearest != nil {
		details["nearest_shift"] = nearest.String()
	}
	return httperr.ErrBusinessWith(
		httperr.KindValidation,
		CodeOutsideShift,
		"Booking time ("+requested.String()+") is outside the stylist's working shifts.",
		details,
	)
}

func ErrOverlappingShifts(a, b Interval) error {
	return httperr.ErrBusinessWith(
		httperr.KindValidation,
		CodeOverlappingShifts,
		"Shifts "+a.String()+" and "+b.String()+" overlap.",
		map[string]any{"shifts": []string{a.String(), b.String()}},
	)
}

func ErrBookingConflict(requested Interval, conflictingID uint) error {
	details := map[string]any{"requested": requested.String()}
	if conflictingID != 0 {
		details["conflicting_booking_id"] = conflictingID
	}
	return httperr.ErrBusinessWith(
		httperr.KindConflict,
		CodeBookingConflict,
		"The stylist already has a booking during this time range.",
		details,
	)
}

func ErrAlreadyCanceled(id uint) error {
	return httperr.ErrBusinessWith(
		httperr.KindConflict,
		CodeAlreadyCanceled,
		"Booking already canceled.",
		map[string]any{"booking_id": id},
	)
}

func ErrHasActiveBookings(entity string, id uint) error {
	return httperr.ErrBusinessWith(
		httperr.KindConflict,
		CodeHasActiveBookings,
		"Cannot delete a "+entity+" with active bookings. Cancel them first.",
		map[string]any{"entity": entity, "id": id},
	)
}
