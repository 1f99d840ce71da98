package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solo5e/combatsim/internal/errors"
	"github.com/solo5e/combatsim/internal/pkg/clock"
)

func TestInMemoryCreateGetDelete(t *testing.T) {
	repo := NewInMemory(clock.New())
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateInput{
		Record: &Record{ID: "sim_1", Kind: KindDuel, Winner: "enemy", Rounds: 7},
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, GetInput{ID: "sim_1"})
	require.NoError(t, err)
	assert.Equal(t, "enemy", got.Record.Winner)

	// The returned record is a copy; mutating it leaves the store intact.
	got.Record.Winner = "actor"
	again, err := repo.Get(ctx, GetInput{ID: "sim_1"})
	require.NoError(t, err)
	assert.Equal(t, "enemy", again.Record.Winner)

	out, err := repo.Delete(ctx, DeleteInput{ID: "sim_1"})
	require.NoError(t, err)
	assert.True(t, out.Deleted)

	_, err = repo.Get(ctx, GetInput{ID: "sim_1"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestInMemoryExpiry(t *testing.T) {
	repo := NewInMemory(clock.New())
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateInput{
		Record: &Record{ID: "sim_2", Kind: KindBatch, Samples: 5},
	})
	require.NoError(t, err)

	repo.expireAfter("sim_2", -time.Second)

	_, err = repo.Get(ctx, GetInput{ID: "sim_2"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
