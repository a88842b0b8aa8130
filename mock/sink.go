package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/pagescrape"
)

var (
	_ pagescrape.Sink = (*Sink)(nil)
	_ pagescrape.Sink = (*MemorySink)(nil)
)

// Sink is a mock implementation of pagescrape.Sink.
type Sink struct {
	StoreFn func(ctx context.Context, data []byte) error
}

func (s *Sink) Store(ctx context.Context, data []byte) error {
	return s.StoreFn(ctx, data)
}

// MemorySink keeps the last stored payload in memory.
type MemorySink struct {
	mu    sync.Mutex
	data  []byte
	calls int
}

func (s *MemorySink) Store(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.calls++
	return nil
}

// Data returns a copy of the last stored payload, or nil if Store was never called.
func (s *MemorySink) Data() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil
	}
	return append([]byte(nil), s.data...)
}

// Calls returns how many times Store was called.
func (s *MemorySink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
