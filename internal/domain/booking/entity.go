package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Draft
// ===============================

// Draft is a booking that passed every validation and only awaits the
// conflict check and commit. It can only be built through NewDraft.
type Draft struct {
	customerID uint
	stylistID  uint
	serviceID  uint
	date       Date
	interval   Interval
}

func NewDraft(customerID, stylistID, serviceID uint, date Date, iv Interval) (Draft, error) {
	switch {
	case customerID == 0:
		return Draft{}, ErrMissingField("customer_id")
	case stylistID == 0:
		return Draft{}, ErrMissingField("stylist_id")
	case serviceID == 0:
		return Draft{}, ErrMissingField("service_id")
	case date.IsZero():
		return Draft{}, ErrMissingField("date")
	}
	if !iv.Start.Before(iv.End) {
		return Draft{}, ErrInvalidFormat("interval", iv.String(), "start before end")
	}

	return Draft{
		customerID: customerID,
		stylistID:  stylistID,
		serviceID:  serviceID,
		date:       date,
		interval:   iv,
	}, nil
}

func (d Draft) StylistID() uint { return d.stylistID }

func (d Draft) Date() Date { return d.date }

func (d Draft) Interval() Interval { return d.interval }

// Model renders the draft as an active booking row.
func (d Draft) Model() *models.Booking {
	return &models.Booking{
		CustomerID:  d.customerID,
		StylistID:   d.stylistID,
		ServiceID:   d.serviceID,
		Date:        d.date.String(),
		StartMinute: d.interval.Start.Minutes(),
		EndMinute:   d.interval.End.Minutes(),
		Status:      string(InitialStatus()),
	}
}

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(b.ID, Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCanceled)
	b.CanceledAt = &now
	return nil
}

// IntervalOf reads the stored bounds of a booking.
func IntervalOf(b *models.Booking) (Interval, error) {
	iv, err := IntervalFromMinutes(b.StartMinute, b.EndMinute)
	if err != nil {
		return Interval{}, fmt.Errorf("booking %d: %w", b.ID, err)
	}
	return iv, nil
}

// ShiftWindowsOf reads the stored shift windows of a stylist.
func ShiftWindowsOf(s *models.Stylist) ([]Interval, error) {
	windows := make([]Interval, 0, len(s.Shifts))
	for _, sh := range s.Shifts {
		w, err := IntervalFromMinutes(sh.StartMinute, sh.EndMinute)
		if err != nil {
			return nil, fmt.Errorf("stylist %d shift %d: %w", s.ID, sh.ID, err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}
