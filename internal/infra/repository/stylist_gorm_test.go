package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	stylistdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/stylist"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestStylistGormRepository_UpdateReplacesOnlyGivenSets(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewStylistGormRepository(gdb)
	ctx := context.Background()

	extra := models.Service{Name: "Beard", DurationMin: 30}
	require.NoError(t, gdb.Create(&extra).Error)

	st, err := repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	st.Name = "Ana Paula"

	err = repo.UpdateStylist(ctx, st, []models.StylistService{{ServiceID: extra.ID}}, nil)
	require.NoError(t, err)

	got, err := repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", got.Name)
	assert.Equal(t, []uint{extra.ID}, got.ServiceIDs())
	assert.Len(t, got.Shifts, 2, "shifts untouched")

	err = repo.UpdateStylist(ctx, got, nil, []models.Shift{{StartMinute: 600, EndMinute: 660}})
	require.NoError(t, err)

	got, err = repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	require.Len(t, got.Shifts, 1)
	assert.Equal(t, 600, got.Shifts[0].StartMinute)
	assert.Equal(t, []uint{extra.ID}, got.ServiceIDs())
}

func TestStylistGormRepository_DeleteAndActiveBookings(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewStylistGormRepository(gdb)
	ctx := context.Background()

	busy, err := repo.HasActiveBookings(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	require.NoError(t, NewBookingGormRepository(gdb).CommitBooking(ctx, booking(s, "2024-06-03", 540, 600)))

	busy, err = repo.HasActiveBookings(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.True(t, busy)

	require.NoError(t, repo.MarkDeleted(ctx, s.stylist.ID))
	got, err := repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.True(t, got.Lifecycle.IsDeleted())

	assert.ErrorIs(t, repo.MarkDeleted(ctx, 999), domain.ErrNotFound)
}

func TestStylistGormRepository_WithinStylistLock(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewStylistGormRepository(gdb)
	ctx := context.Background()

	err := repo.WithinStylistLock(ctx, 999, func(context.Context, stylistdomain.Repository) error {
		t.Fatal("callback must not run for an unknown stylist")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	boom := errors.New("boom")
	err = repo.WithinStylistLock(ctx, s.stylist.ID, func(ctx context.Context, locked stylistdomain.Repository) error {
		require.NoError(t, locked.MarkDeleted(ctx, s.stylist.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.False(t, got.Lifecycle.IsDeleted(), "rolled back with the callback error")

	err = repo.WithinStylistLock(ctx, s.stylist.ID, func(ctx context.Context, locked stylistdomain.Repository) error {
		return locked.MarkDeleted(ctx, s.stylist.ID)
	})
	require.NoError(t, err)

	got, err = repo.GetStylist(ctx, s.stylist.ID)
	require.NoError(t, err)
	assert.True(t, got.Lifecycle.IsDeleted())
}

func TestStylistGormRepository_ListServicesByIDs(t *testing.T) {
	gdb := dbtest.Open(t)
	s := seedCatalog(t, gdb)
	repo := NewStylistGormRepository(gdb)

	found, err := repo.ListServicesByIDs(context.Background(), []uint{s.service.ID, 999})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Cut", found[0].Name)

	found, err = repo.ListServicesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
