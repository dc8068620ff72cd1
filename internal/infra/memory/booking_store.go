// Package memory is an in-process implementation of the booking
// repository, used by tests and local tooling.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type slotKey struct {
	stylistID uint
	date      string
}

type BookingStore struct {
	mu        sync.RWMutex
	customers map[uint]models.Customer
	stylists  map[uint]models.Stylist
	services  map[uint]models.Service
	bookings  map[uint]models.Booking
	nextID    uint

	locksMu sync.Mutex
	locks   map[slotKey]*sync.Mutex

	now func() time.Time
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		customers: make(map[uint]models.Customer),
		stylists:  make(map[uint]models.Stylist),
		services:  make(map[uint]models.Service),
		bookings:  make(map[uint]models.Booking),
		locks:     make(map[slotKey]*sync.Mutex),
		now:       time.Now,
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *BookingStore) PutCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Lifecycle == "" {
		c.Lifecycle = models.LifecycleActive
	}
	s.customers[c.ID] = c
}

func (s *BookingStore) PutStylist(st models.Stylist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Lifecycle == "" {
		st.Lifecycle = models.LifecycleActive
	}
	s.stylists[st.ID] = st
}

func (s *BookingStore) PutService(sv models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sv.Lifecycle == "" {
		sv.Lifecycle = models.LifecycleActive
	}
	s.services[sv.ID] = sv
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *BookingStore) GetCustomer(_ context.Context, id uint) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *BookingStore) GetStylist(_ context.Context, id uint) (*models.Stylist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stylists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	st.Services = append([]models.StylistService(nil), st.Services...)
	st.Shifts = append([]models.Shift(nil), st.Shifts...)
	return &st, nil
}

func (s *BookingStore) GetService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sv, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sv, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (s *BookingStore) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (s *BookingStore) ListActiveBookings(_ context.Context, stylistID uint, date domain.Date) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(stylistID, date.String(), true), nil
}

func (s *BookingStore) ListBookings(_ context.Context, stylistID uint, date domain.Date) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filter(stylistID, date.String(), false)
	for i := range out {
		out[i].Customer = s.customers[out[i].CustomerID]
		out[i].Service = s.services[out[i].ServiceID]
	}
	return out, nil
}

// CommitBooking refuses a row overlapping another active booking of the
// same stylist and date, the way the database exclusion constraint does.
func (s *BookingStore) CommitBooking(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, err := domain.IntervalOf(b)
	if err != nil {
		return err
	}
	if err := domain.DetectConflict(candidate, s.filter(b.StylistID, b.Date, true)); err != nil {
		return domain.ErrBookingConflict(candidate, 0)
	}

	s.nextID++
	now := s.now()
	b.ID = s.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings[b.ID] = *b
	return nil
}

func (s *BookingStore) SetBookingStatus(
	_ context.Context,
	id uint,
	from domain.Status,
	to domain.Status,
	at time.Time,
) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if domain.Status(b.Status) != from {
		return &b, domain.ErrStatusChanged
	}

	b.Status = string(to)
	if to == domain.StatusCanceled {
		b.CanceledAt = &at
	}
	b.UpdatedAt = at
	s.bookings[id] = b
	return &b, nil
}

func (s *BookingStore) WithinSlotLock(
	ctx context.Context,
	stylistID uint,
	date domain.Date,
	fn func(ctx context.Context, repo domain.Repository) error,
) error {
	lock := s.slotLock(slotKey{stylistID: stylistID, date: date.String()})
	lock.Lock()
	defer lock.Unlock()

	return fn(ctx, s)
}

func (s *BookingStore) slotLock(k slotKey) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[k]
	if !ok {
		l = &sync.Mutex{}
		s.locks[k] = l
	}
	return l
}

// filter must be called with mu held.
func (s *BookingStore) filter(stylistID uint, date string, activeOnly bool) []models.Booking {
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.StylistID != stylistID || b.Date != date {
			continue
		}
		if activeOnly && domain.Status(b.Status) != domain.StatusActive {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartMinute != out[j].StartMinute {
			return out[i].StartMinute < out[j].StartMinute
		}
		return out[i].ID < out[j].ID
	})
	return out
}

var _ domain.Repository = (*BookingStore)(nil)
