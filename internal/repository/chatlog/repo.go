// Package chatlog provides the in-memory chat message log.
package chatlog

import (
	"context"
	"sync"

	domchat "github.com/curio-labs/searchlab/internal/domain/chat"
)

// Repo stores chat messages in arrival order.
type Repo struct {
	mu       sync.RWMutex
	messages []domchat.Message
}

// New creates an empty chat log.
func New() *Repo {
	return &Repo{}
}

// Append adds a message to the end of the log.
func (r *Repo) Append(_ context.Context, msg domchat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

// Recent returns a copy of the last n messages in log order. n <= 0 returns
// the whole log.
func (r *Repo) Recent(_ context.Context, n int) []domchat.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if n > 0 && len(r.messages) > n {
		start = len(r.messages) - n
	}
	out := make([]domchat.Message, len(r.messages)-start)
	copy(out, r.messages[start:])
	return out
}

// Len returns the number of logged messages.
func (r *Repo) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}

// Clear drops every message. Idempotent.
func (r *Repo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
	return nil
}
