package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-quiz/internal/events"
)

// Verify interface compliance at compile time
var _ events.EventEmitter = (*MockEventEmitter)(nil)

// MockEventEmitter implements events.EventEmitter and records every event.
type MockEventEmitter struct {
	EmitEventFn func(ctx context.Context, event *events.Event) error
	Err         error

	mu     sync.Mutex
	events []*events.Event
}

// EmitEvent implements events.EventEmitter
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.EmitEventFn != nil {
		return m.EmitEventFn(ctx, event)
	}
	return m.Err
}

// Events returns a copy of the recorded events in emission order.
func (m *MockEventEmitter) Events() []*events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*events.Event(nil), m.events...)
}

// Types returns the types of the recorded events in emission order.
func (m *MockEventEmitter) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.events))
	for i, e := range m.events {
		types[i] = e.Type
	}
	return types
}
