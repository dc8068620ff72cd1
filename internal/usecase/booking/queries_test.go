package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestListBookingsByDate(t *testing.T) {
	store := newStore(t)
	create := NewCreateBooking(store, &recordingSink{})

	late, err := create.Execute(context.Background(), input("15:00"))
	require.NoError(t, err)
	_, err = create.Execute(context.Background(), input("09:00"))
	require.NoError(t, err)

	_, err = NewCancelBooking(store, &recordingSink{}).Execute(context.Background(), late.ID)
	require.NoError(t, err)

	list, err := NewListBookingsByDate(store).Execute(context.Background(), stylistID, bookingDate)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "09:00", list[0].StartTime)
	assert.Equal(t, "10:00", list[0].EndTime)
	assert.Equal(t, "Maria", list[0].CustomerName)
	assert.Equal(t, "Cut", list[0].ServiceName)
	assert.Equal(t, string(domain.StatusCanceled), list[1].Status)
}

func TestListBookingsByDate_Validation(t *testing.T) {
	uc := NewListBookingsByDate(newStore(t))

	_, err := uc.Execute(context.Background(), stylistID, "")
	assert.True(t, httperr.IsBusiness(err, domain.CodeMissingField))

	_, err = uc.Execute(context.Background(), stylistID, "2024-13-01")
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidFormat))

	_, err = uc.Execute(context.Background(), 99, bookingDate)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFoundOrDeleted))
}

func TestListBookingsByDate_DeletedStylistKeepsHistory(t *testing.T) {
	store := newStore(t)
	_, err := NewCreateBooking(store, &recordingSink{}).Execute(context.Background(), input("09:00"))
	require.NoError(t, err)

	st, err := store.GetStylist(context.Background(), stylistID)
	require.NoError(t, err)
	st.Lifecycle = models.LifecycleDeleted
	store.PutStylist(*st)

	list, err := NewListBookingsByDate(store).Execute(context.Background(), stylistID, bookingDate)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetAvailability(t *testing.T) {
	store := newStore(t)
	_, err := NewCreateBooking(store, &recordingSink{}).Execute(context.Background(), input("10:00"))
	require.NoError(t, err)

	slots, err := NewGetAvailability(store).Execute(context.Background(), AvailabilityInput{
		StylistID: stylistID,
		ServiceID: cutID,
		Date:      bookingDate,
	})
	require.NoError(t, err)

	var starts []string
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	assert.Equal(t, []string{"09:00", "11:00", "14:00", "15:00", "16:00", "17:00"}, starts)
}

func TestGetAvailability_Validation(t *testing.T) {
	uc := NewGetAvailability(newStore(t))

	_, err := uc.Execute(context.Background(), AvailabilityInput{StylistID: stylistID})
	require.True(t, httperr.IsBusiness(err, domain.CodeMissingField))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, []string{"service_id", "date"}, be.Details["fields"])

	_, err = uc.Execute(context.Background(), AvailabilityInput{StylistID: stylistID, ServiceID: colorID, Date: bookingDate})
	assert.True(t, httperr.IsBusiness(err, domain.CodeUnofferedService))
}
