package simulation

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/solo5e/combatsim/internal/errors"
	"github.com/solo5e/combatsim/internal/pkg/clock"
	redisclient "github.com/solo5e/combatsim/internal/redis"
)

const (
	// Key pattern: simulation:{id}
	recordKeyPrefix = "simulation:"
	defaultTTL      = 24 * time.Hour

	errRecordNil = "record cannot be nil"
	errIDEmpty   = "record id cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for simulation results
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new result record with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
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

	recordJSON, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	key := r.buildKey(record.ID)
	if err := r.client.Set(ctx, key, recordJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store record in Redis")
	}

	return &CreateOutput{Record: &record}, nil
}

// Get retrieves a result record by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := r.buildKey(input.ID)
	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("simulation record not found")
		}
		return nil, errors.Wrapf(err, "failed to get record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	// Expired records count as missing even before Redis evicts them.
	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("simulation record has expired")
	}

	return &GetOutput{Record: &record}, nil
}

// Delete removes a result record
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result := r.client.Del(ctx, r.buildKey(input.ID))
	if result.Err() != nil {
		return nil, errors.Wrapf(result.Err(), "failed to delete record from Redis")
	}

	return &DeleteOutput{Deleted: result.Val() > 0}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return recordKeyPrefix + id
}
