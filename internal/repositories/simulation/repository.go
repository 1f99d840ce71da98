// Package simulation provides storage for simulation result records so
// clients can fetch a run's outcome later by id.
package simulation

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=simulationmock github.com/solo5e/combatsim/internal/repositories/simulation Repository

// Kind distinguishes what was simulated
type Kind string

// Record kinds
const (
	KindDuel      Kind = "duel"
	KindBatch     Kind = "batch"
	KindEncounter Kind = "encounter"
)

// Record is a stored simulation summary. Only one of the duel, batch, or
// encounter field groups is populated, per Kind.
type Record struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Seed uint64 `json:"seed"`

	// Duel fields
	Winner string `json:"winner,omitempty"`
	Rounds int    `json:"rounds,omitempty"`

	// Batch fields
	Samples   int `json:"samples,omitempty"`
	ActorWins int `json:"actor_wins,omitempty"`
	EnemyWins int `json:"enemy_wins,omitempty"`
	Draws     int `json:"draws,omitempty"`

	// Encounter fields
	Survived         bool `json:"survived,omitempty"`
	RemainingEnemies int  `json:"remaining_enemies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for storing a result record
type CreateInput struct {
	Record *Record
	TTL    time.Duration
}

// CreateOutput contains the stored record with timestamps filled in
type CreateOutput struct {
	Record *Record
}

// GetInput contains parameters for fetching a record by id
type GetInput struct {
	ID string
}

// GetOutput contains the fetched record
type GetOutput struct {
	Record *Record
}

// DeleteInput contains parameters for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting a record
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for simulation result storage
type Repository interface {
	// Create stores a new result record with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a result record by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a result record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
