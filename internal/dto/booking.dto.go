package dto

import (
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type BookingDTO struct {
	ID         uint       `json:"id"`
	CustomerID uint       `json:"customer_id"`
	StylistID  uint       `json:"stylist_id"`
	ServiceID  uint       `json:"service_id"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	Status     string     `json:"status"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type BookingListDTO struct {
	BookingDTO
	CustomerName string `json:"customer_name"`
	ServiceName  string `json:"service_name"`
}

type SlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func FromBooking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		StylistID:  b.StylistID,
		ServiceID:  b.ServiceID,
		Date:       b.Date,
		StartTime:  minuteLabel(b.StartMinute),
		EndTime:    minuteLabel(b.EndMinute),
		Status:     b.Status,
		CanceledAt: b.CanceledAt,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromSlots(slots []domain.Interval) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{Start: s.Start.String(), End: s.End.String()})
	}
	return out
}

func minuteLabel(m int) string {
	t, err := domain.FromMinutes(m)
	if err != nil {
		return ""
	}
	return t.String()
}

type BookingPartyDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BookingDetailDTO is a booking with its customer, stylist and service.
type BookingDetailDTO struct {
	BookingDTO
	Customer BookingPartyDTO `json:"customer"`
	Stylist  BookingPartyDTO `json:"stylist"`
	Service  struct {
		BookingPartyDTO
		DurationMin int `json:"duration_min"`
	} `json:"service"`
}

func FromBookingDetail(b *models.Booking) BookingDetailDTO {
	out := BookingDetailDTO{
		BookingDTO: FromBooking(b),
		Customer:   BookingPartyDTO{ID: b.Customer.ID, Name: b.Customer.Name},
		Stylist:    BookingPartyDTO{ID: b.Stylist.ID, Name: b.Stylist.Name},
	}
	out.Service.ID = b.Service.ID
	out.Service.Name = b.Service.Name
	out.Service.DurationMin = b.Service.DurationMin
	return out
}
