package booking

import (
	"sync"
	"testing"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	customerID   uint = 1
	stylistID    uint = 1
	cutID        uint = 1 // 60 min, offered
	fringeID     uint = 2 // 30 min, offered
	colorID      uint = 3 // 120 min, not offered
	bookingDate       = "2024-06-03"
	otherStylist uint = 2
)

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

// newStore seeds one customer, two stylists working 09:00-12:00 and
// 14:00-18:00, and three services.
func newStore(t *testing.T) *memory.BookingStore {
	t.Helper()

	store := memory.NewBookingStore()

	store.PutCustomer(models.Customer{ID: customerID, Name: "Maria", Phone: "5511999990000"})

	store.PutService(models.Service{ID: cutID, Name: "Cut", DurationMin: 60})
	store.PutService(models.Service{ID: fringeID, Name: "Fringe", DurationMin: 30})
	store.PutService(models.Service{ID: colorID, Name: "Color", DurationMin: 120})

	for _, id := range []uint{stylistID, otherStylist} {
		store.PutStylist(models.Stylist{
			ID:   id,
			Name: "Stylist",
			Services: []models.StylistService{
				{StylistID: id, ServiceID: cutID},
				{StylistID: id, ServiceID: fringeID},
			},
			Shifts: []models.Shift{
				{StylistID: id, StartMinute: 540, EndMinute: 720, Position: 0},
				{StylistID: id, StartMinute: 840, EndMinute: 1080, Position: 1},
			},
		})
	}

	return store
}

func input(start string) CreateBookingInput {
	return CreateBookingInput{
		CustomerID: customerID,
		StylistID:  stylistID,
		ServiceID:  cutID,
		Date:       bookingDate,
		StartTime:  start,
	}
}
