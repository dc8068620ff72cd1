package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestNewDraft(t *testing.T) {
	date, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	iv := mustInterval(t, "09:00-10:00")

	d, err := NewDraft(1, 2, 3, date, iv)
	require.NoError(t, err)

	b := d.Model()
	assert.Equal(t, uint(1), b.CustomerID)
	assert.Equal(t, uint(2), b.StylistID)
	assert.Equal(t, uint(3), b.ServiceID)
	assert.Equal(t, "2024-06-01", b.Date)
	assert.Equal(t, 540, b.StartMinute)
	assert.Equal(t, 600, b.EndMinute)
	assert.Equal(t, string(StatusActive), b.Status)

	_, err = NewDraft(0, 2, 3, date, iv)
	assert.True(t, httperr.IsBusiness(err, CodeMissingField))
	_, err = NewDraft(1, 2, 3, Date{}, iv)
	assert.True(t, httperr.IsBusiness(err, CodeMissingField))
}

func TestNewDraft_EarliestCalendarDay(t *testing.T) {
	date, err := ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.False(t, date.IsZero())

	d, err := NewDraft(1, 2, 3, date, mustInterval(t, "09:00-10:00"))
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", d.Model().Date)
}

func TestCancel_OnlyOnce(t *testing.T) {
	b := &models.Booking{ID: 7, Status: string(StatusActive)}
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCanceled), b.Status)
	require.NotNil(t, b.CanceledAt)
	assert.Equal(t, now, *b.CanceledAt)

	err := Cancel(b, now.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, CodeAlreadyCanceled))
	assert.Equal(t, now, *b.CanceledAt)
}

func TestDetectConflict(t *testing.T) {
	active := []models.Booking{
		{ID: 1, StartMinute: 540, EndMinute: 600},
	}

	err := DetectConflict(mustInterval(t, "09:30-10:30"), active)
	require.True(t, httperr.IsBusiness(err, CodeBookingConflict))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, uint(1), be.Details["conflicting_booking_id"])
	assert.Equal(t, httperr.KindConflict, be.Kind)

	assert.NoError(t, DetectConflict(mustInterval(t, "10:00-11:00"), active))
	assert.NoError(t, DetectConflict(mustInterval(t, "08:00-09:00"), active))
	assert.NoError(t, DetectConflict(mustInterval(t, "09:00-10:00"), nil))
}

func TestShiftWindowsOf(t *testing.T) {
	s := &models.Stylist{
		ID: 4,
		Shifts: []models.Shift{
			{StartMinute: 540, EndMinute: 720},
			{StartMinute: 840, EndMinute: 1080},
		},
	}

	windows, err := ShiftWindowsOf(s)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "14:00-18:00", windows[1].String())

	s.Shifts = append(s.Shifts, models.Shift{StartMinute: 600, EndMinute: 600})
	_, err = ShiftWindowsOf(s)
	assert.Error(t, err)
}
