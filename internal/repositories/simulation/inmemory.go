package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/solo5e/combatsim/internal/errors"
	"github.com/solo5e/combatsim/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Useful
// for one-shot CLI runs where nothing should outlive the process.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]*Record),
	}
}

// Create stores a new result record
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	record := *input.Record
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[record.ID] = &record

	out := record
	return &CreateOutput{Record: &out}, nil
}

// Get retrieves a result record by id
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	record, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("simulation record not found")
	}
	if r.clock.Now().After(record.ExpiresAt) {
		r.mu.Lock()
		delete(r.store, input.ID)
		r.mu.Unlock()
		return nil, errors.NotFound("simulation record has expired")
	}

	// Return a copy to prevent external modification
	out := *record
	return &GetOutput{Record: &out}, nil
}

// Delete removes a result record
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.ID]
	delete(r.store, input.ID)
	return &DeleteOutput{Deleted: exists}, nil
}

// expireAfter is a test hook: forces a record to expire after d
func (r *InMemoryRepository) expireAfter(id string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.store[id]; ok {
		record.ExpiresAt = r.clock.Now().Add(d)
	}
}
