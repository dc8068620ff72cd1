package stylist

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
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

func setup(t *testing.T) (*gorm.DB, *infraRepo.StylistGormRepository, []models.Service) {
	t.Helper()

	gdb := dbtest.Open(t)
	services := []models.Service{
		{Name: "Cut", DurationMin: 60},
		{Name: "Beard", DurationMin: 30},
		{Name: "Perm", DurationMin: 90, Lifecycle: models.LifecycleDeleted},
	}
	require.NoError(t, gdb.Create(&services).Error)

	return gdb, infraRepo.NewStylistGormRepository(gdb), services
}

func TestCreateStylist(t *testing.T) {
	_, repo, services := setup(t)
	sink := &recordingSink{}
	staffID := uint(7)

	s, err := NewCreateStylist(repo, sink).Execute(context.Background(), CreateStylistInput{
		StaffID:    &staffID,
		Name:       "  Ana ",
		ServiceIDs: []uint{services[0].ID, services[1].ID, services[0].ID},
		Shifts:     []string{"14:00-18:00", "09:00-12:00"},
	})
	require.NoError(t, err)

	assert.NotZero(t, s.ID)
	assert.Equal(t, "Ana", s.Name)
	assert.ElementsMatch(t, []uint{services[0].ID, services[1].ID}, s.ServiceIDs())

	stored, err := repo.GetStylist(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, stored.Shifts, 2)
	assert.Equal(t, 840, stored.Shifts[0].StartMinute)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "stylist_created", sink.events[0].Action)
	assert.Equal(t, &staffID, sink.events[0].StaffID)
}

func TestCreateStylist_Validation(t *testing.T) {
	_, repo, services := setup(t)
	uc := NewCreateStylist(repo, &recordingSink{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateStylistInput{})
	require.True(t, httperr.IsBusiness(err, domain.CodeMissingField))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, []string{"name", "service_ids", "shifts"}, be.Details["fields"])

	_, err = uc.Execute(ctx, CreateStylistInput{
		Name:       "Ana",
		ServiceIDs: []uint{services[0].ID},
		Shifts:     []string{"09:00-12:00", "11:00-13:00"},
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodeOverlappingShifts))

	_, err = uc.Execute(ctx, CreateStylistInput{
		Name:       "Ana",
		ServiceIDs: []uint{services[0].ID},
		Shifts:     []string{"9-12"},
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidFormat))

	_, err = uc.Execute(ctx, CreateStylistInput{
		Name:       "Ana",
		ServiceIDs: []uint{services[0].ID, services[2].ID, 999},
		Shifts:     []string{"09:00-12:00"},
	})
	require.True(t, httperr.IsBusiness(err, domain.CodeNotFoundOrDeleted))
	be, _ = httperr.AsBusiness(err)
	assert.Equal(t, []uint{999}, be.Details["missing_ids"])
	assert.Equal(t, []uint{services[2].ID}, be.Details["deleted_ids"])
}

func TestUpdateStylist(t *testing.T) {
	_, repo, services := setup(t)
	ctx := context.Background()

	s, err := NewCreateStylist(repo, &recordingSink{}).Execute(ctx, CreateStylistInput{
		Name:       "Ana",
		ServiceIDs: []uint{services[0].ID},
		Shifts:     []string{"09:00-12:00"},
	})
	require.NoError(t, err)

	sink := &recordingSink{}
	uc := NewUpdateStylist(repo, sink)

	name := "Ana Paula"
	updated, err := uc.Execute(ctx, UpdateStylistInput{
		StylistID: s.ID,
		Name:      &name,
		Shifts:    []string{"10:00-14:00", "15:00-19:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", updated.Name)

	stored, err := repo.GetStylist(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Shifts, 2)
	assert.Equal(t, []uint{services[0].ID}, stored.ServiceIDs(), "services untouched")

	blank := "  "
	_, err = uc.Execute(ctx, UpdateStylistInput{StylistID: s.ID, Name: &blank})
	assert.True(t, httperr.IsBusiness(err, domain.CodeMissingField))

	_, err = uc.Execute(ctx, UpdateStylistInput{StylistID: s.ID, Shifts: []string{"10:00-14:00", "13:00-15:00"}})
	assert.True(t, httperr.IsBusiness(err, domain.CodeOverlappingShifts))

	_, err = uc.Execute(ctx, UpdateStylistInput{StylistID: 999, Name: &name})
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFoundOrDeleted))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "stylist_updated", sink.events[0].Action)
}

func TestDeleteStylist(t *testing.T) {
	gdb, repo, services := setup(t)
	ctx := context.Background()

	s, err := NewCreateStylist(repo, &recordingSink{}).Execute(ctx, CreateStylistInput{
		Name:       "Ana",
		ServiceIDs: []uint{services[0].ID},
		Shifts:     []string{"09:00-12:00"},
	})
	require.NoError(t, err)

	customer := models.Customer{Name: "Maria", Phone: "5511999990000"}
	require.NoError(t, gdb.Create(&customer).Error)
	b := models.Booking{
		CustomerID:  customer.ID,
		StylistID:   s.ID,
		ServiceID:   services[0].ID,
		Date:        "2024-06-03",
		StartMinute: 540,
		EndMinute:   600,
		Status:      string(domain.StatusActive),
	}
	require.NoError(t, gdb.Create(&b).Error)

	sink := &recordingSink{}
	uc := NewDeleteStylist(repo, sink)

	err = uc.Execute(ctx, nil, s.ID)
	require.True(t, httperr.IsBusiness(err, domain.CodeHasActiveBookings))

	require.NoError(t, gdb.Model(&b).Update("status", string(domain.StatusCanceled)).Error)

	require.NoError(t, uc.Execute(ctx, nil, s.ID))

	err = uc.Execute(ctx, nil, s.ID)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFoundOrDeleted))

	err = uc.Execute(ctx, nil, 999)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFoundOrDeleted))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "stylist_deleted", sink.events[0].Action)
}
