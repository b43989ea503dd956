package mocks

import (
	"fmt"
	"sync"

	"github.com/mcoot/hangman-go/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	mu     sync.Mutex
	queue  []string
	issued int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewID returns the next queued id, or "game-N" once the queue is empty
func (g *MockIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	if len(g.queue) > 0 {
		id := g.queue[0]
		g.queue = g.queue[1:]
		return id
	}
	return fmt.Sprintf("game-%d", g.issued)
}

// QueueIDs adds ids to be returned by NewID
func (g *MockIDs) QueueIDs(values ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queue = append(g.queue, values...)
}
