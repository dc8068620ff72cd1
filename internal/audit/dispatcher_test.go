package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingWriter struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (w *recordingWriter) Write(_ context.Context, ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("boom")
	}
	w.events = append(w.events, ev)
	return nil
}

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(w, zap.NewNop(), 10)

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: "booking_created", Entity: "booking"})
	}
	d.Close()

	require.Len(t, w.events, 5)
	assert.Equal(t, "booking_created", w.events[0].Action)
}

func TestDispatcher_DispatchAfterCloseIsIgnored(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(w, zap.NewNop(), 1)
	d.Close()
	d.Close()

	d.Dispatch(Event{Action: "late"})
	assert.Empty(t, w.events)
}

func TestDispatcher_WriterErrorsDoNotStopWorker(t *testing.T) {
	w := &recordingWriter{fail: true}
	d := NewDispatcher(w, zap.NewNop(), 10)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	assert.Empty(t, w.events)
}
