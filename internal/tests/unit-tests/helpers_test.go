package unit_tests

import (
	"context"
	"sync"
	"testing"

	"medconsult/internal/events"
)

type recordedEvent struct {
	Name  string
	Event events.Event
}

type eventRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

// recordEvents captures everything emitted until the test ends.
func recordEvents(t *testing.T) *eventRecorder {
	t.Helper()
	r := &eventRecorder{}
	events.SetCustomEmitter(func(ctx context.Context, name string, evt events.Event) {
		r.mu.Lock()
		r.events = append(r.events, recordedEvent{Name: name, Event: evt})
		r.mu.Unlock()
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return r
}

func (r *eventRecorder) Named(name string) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e.Event)
		}
	}
	return out
}

func (r *eventRecorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

func ptr[T any](v T) *T { return &v }
