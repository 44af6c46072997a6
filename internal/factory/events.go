package factory

import (
	"sync"

	"github.com/atherden/boardwalk/internal/model"
)

// EventRecorder captures game events for inspection in tests and the simulator
type EventRecorder struct {
	mu     sync.Mutex
	events []model.Event
}

func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// Record is an engine.Sink
func (r *EventRecorder) Record(ev model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far
func (r *EventRecorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset clears the recorded events
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
