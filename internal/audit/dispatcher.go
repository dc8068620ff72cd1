package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	StaffID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit events on a background worker so that requests
// never wait on, or fail because of, the audit trail.
type Dispatcher struct {
	writer Writer
	log    *zap.Logger
	queue  chan Event

	wg       sync.WaitGroup
	closeMux sync.Mutex
	closed   bool
}

func NewDispatcher(writer Writer, log *zap.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		writer: writer,
		log:    log,
		queue:  make(chan Event, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.writer.Write(context.Background(), ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.closeMux.Lock()
	defer d.closeMux.Unlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than block the request
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeMux.Lock()
	if d.closed {
		d.closeMux.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.closeMux.Unlock()

	d.wg.Wait()
}

// Sink accepts audit events. *Dispatcher and Discard implement it.
type Sink interface {
	Dispatch(ev Event)
}

type discard struct{}

func (discard) Dispatch(Event) {}

// Discard drops every event.
var Discard Sink = discard{}
