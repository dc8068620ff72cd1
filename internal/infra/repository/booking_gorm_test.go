package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type seed struct {
	customer models.Customer
	service  models.Service
	stylist  models.Stylist
}

func seedCatalog(t *testing.T, gdb *gorm.DB) seed {
	t.Helper()

	s := seed{
		customer: models.Customer{Name: "Maria", Phone: "5511999990000"},
		service:  models.Service{Name: "Cut", DurationMin: 60},
	}
	require.NoError(t, gdb.Create(&s.customer).Error)
	require.NoError(t, gdb.Create(&s.service).Error)

	repo := NewStylistGormRepository(gdb)
	s.stylist = models.Stylist{
		Name:     "Ana",
		Services: []models.StylistService{{ServiceID: s.service.ID}},
		Shifts: []models.Shift{
			{StartMinute: 840, EndMinute: 1080, Position: 0},
			{StartMinute: 540, EndMinute: 720, Position: 1},
		},
	}
	require.NoError(t, repo.CreateStylist(context.Background(), &s.stylist))
	return s
}

func booking(s seed, date string, start, end int) *models.Booking {
	return &models.Booking{
		CustomerID:  s.customer.ID,
		StylistID:   s.stylist.ID,
		ServiceID:   s.service.ID,
		Date:        date,
		StartMinute: start,
		EndMinute:   end,
		Status:      string(domain.StatusActive),
	}
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestBookingGormRepository_Lookups(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	st, err := repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.True(t, st.Offers(s.service.ID))
	require.Len(t, st.Shifts, 2)
	assert.Equal(t, 840, st.Shifts[0].StartMinute, "shifts keep submission order")
	assert.Equal(t, models.LifecycleActive, st.Lifecycle)

	_, err = repo.GetStylist(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetCustomer(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetService(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetBooking(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingGormRepository_CommitAndList(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	b1 := booking(s, "2024-06-03", 600, 660)
	b2 := booking(s, "2024-06-03", 540, 600)
	other := booking(s, "2024-06-04", 540, 600)
	for _, b := range []*models.Booking{b1, b2, other} {
		require.NoError(t, repo.CommitBooking(ctx, b))
		assert.NotZero(t, b.ID)
	}

	active, err := repo.ListActiveBookings(ctx, s.stylist.ID, mustDate(t, "2024-06-03"))
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, b2.ID, active[0].ID)

	list, err := repo.ListBookings(ctx, s.stylist.ID, mustDate(t, "2024-06-03"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Maria", list[0].Customer.Name)
	assert.Equal(t, "Cut", list[0].Service.Name)
}

func TestBookingGormRepository_DuplicateStartIsConflict(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.CommitBooking(ctx, booking(s, "2024-06-03", 540, 600)))

	err := repo.CommitBooking(ctx, booking(s, "2024-06-03", 540, 570))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeBookingConflict))
}

func TestBookingGormRepository_SetBookingStatus(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()

	b := booking(s, "2024-06-03", 540, 600)
	require.NoError(t, repo.CommitBooking(ctx, b))

	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	updated, err := repo.SetBookingStatus(ctx, b.ID, domain.StatusActive, domain.StatusCanceled, at)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), updated.Status)
	require.NotNil(t, updated.CanceledAt)

	current, err := repo.SetBookingStatus(ctx, b.ID, domain.StatusActive, domain.StatusCanceled, at)
	assert.ErrorIs(t, err, domain.ErrStatusChanged)
	require.NotNil(t, current)
	assert.Equal(t, string(domain.StatusCanceled), current.Status)

	_, err = repo.SetBookingStatus(ctx, 999, domain.StatusActive, domain.StatusCanceled, at)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// the canceled row no longer holds its start
	assert.NoError(t, repo.CommitBooking(ctx, booking(s, "2024-06-03", 540, 600)))
}

func TestBookingGormRepository_WithinSlotLock(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewBookingGormRepository(gdb)
	ctx := context.Background()
	date := mustDate(t, "2024-06-03")

	err := repo.WithinSlotLock(ctx, s.stylist.ID, date, func(ctx context.Context, tx domain.Repository) error {
		return tx.CommitBooking(ctx, booking(s, date.String(), 540, 600))
	})
	require.NoError(t, err)

	// a failing unit of work leaves nothing behind
	err = repo.WithinSlotLock(ctx, s.stylist.ID, date, func(ctx context.Context, tx domain.Repository) error {
		if err := tx.CommitBooking(ctx, booking(s, date.String(), 600, 660)); err != nil {
			return err
		}
		return domain.ErrBookingConflict(domain.Interval{}, 0)
	})
	require.Error(t, err)

	active, err := repo.ListActiveBookings(ctx, s.stylist.ID, date)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	err = repo.WithinSlotLock(ctx, 999, date, func(context.Context, domain.Repository) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
