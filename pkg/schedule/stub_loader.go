package schedule

import (
	"context"
	"sync"
)

// StubLoader is an in-memory Loader for tests.
type StubLoader struct {
	mu     sync.RWMutex
	events []Event
	err    error
}

func NewStubLoader(events ...Event) *StubLoader {
	return &StubLoader{events: events}
}

func (s *StubLoader) Load(ctx context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}
	result := make([]Event, len(s.events))
	copy(result, s.events)
	return result, nil
}

func (s *StubLoader) SetEvents(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = events
}

// SetError makes every Load call fail, for error-path tests.
func (s *StubLoader) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Reset clears events and the configured error.
func (s *StubLoader) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.err = nil
}
