package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magnate-game/magnate/internal/models"
)

const feedKeyPrefix = "feed:"

// Config holds configuration for the Redis feed repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis lists
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed feed repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Append pushes an event onto the end of the game's feed list
func (r *redisRepository) Append(ctx context.Context, input *AppendInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}
	if input.Event.GameID == "" {
		return errors.New("event game ID cannot be empty")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	feedKey := fmt.Sprintf("%s%s", feedKeyPrefix, input.Event.GameID)
	if err := r.client.RPush(ctx, feedKey, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	return nil
}

// List reads a slice of the game's feed, oldest first
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	start := int64(input.Offset)
	stop := int64(-1)
	if input.Count > 0 {
		stop = start + int64(input.Count) - 1
	}

	feedKey := fmt.Sprintf("%s%s", feedKeyPrefix, input.GameID)
	raw, err := r.client.LRange(ctx, feedKey, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	events := make([]*models.Event, 0, len(raw))
	for _, entry := range raw {
		var event models.Event
		if err := json.Unmarshal([]byte(entry), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, &event)
	}

	return &ListOutput{Events: events}, nil
}

// Clear removes the game's feed list
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	feedKey := fmt.Sprintf("%s%s", feedKeyPrefix, input.GameID)
	if err := r.client.Del(ctx, feedKey).Err(); err != nil {
		return fmt.Errorf("failed to clear feed: %w", err)
	}

	return nil
}
