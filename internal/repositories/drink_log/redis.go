package drink_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/soberline/soberline/internal/models"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix      = "drink:"
	userDrinksKeyPrefix = "user_drinks:"
)

// ErrDrinkNotFound is returned when a drink event is not found
var ErrDrinkNotFound = errors.New("drink event not found")

// Config holds configuration for the Redis drink log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink log repository
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

// AddDrink stores a drink event in the user's log
func (r *redisRepository) AddDrink(ctx context.Context, input *AddDrinkInput) error {
	if input == nil || input.Drink == nil {
		return errors.New("input and drink cannot be nil")
	}

	drink := input.Drink

	if drink.ID == "" {
		return errors.New("drink ID cannot be empty")
	}

	if drink.UserID == "" {
		return errors.New("drink user ID cannot be empty")
	}

	if drink.Timestamp.IsZero() {
		drink.Timestamp = time.Now()
	}

	// Marshal the drink to JSON
	drinkJSON, err := json.Marshal(drink)
	if err != nil {
		return fmt.Errorf("failed to marshal drink event: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the drink event
	drinkKey := fmt.Sprintf("%s%s", drinkKeyPrefix, drink.ID)
	pipe.Set(ctx, drinkKey, drinkJSON, 0) // No expiration, logs are small

	// Index it in the user's log, scored by consumption time
	userKey := fmt.Sprintf("%s%s", userDrinksKeyPrefix, drink.UserID)
	pipe.ZAdd(ctx, userKey, redis.Z{
		Score:  float64(drink.Timestamp.UnixMilli()),
		Member: drink.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add drink event: %w", err)
	}

	return nil
}

// GetDrinksForUser retrieves all drink events for a user, oldest first
func (r *redisRepository) GetDrinksForUser(ctx context.Context, input *GetDrinksForUserInput) (*GetDrinksForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	// Get all drink IDs for the user in timestamp order
	userKey := fmt.Sprintf("%s%s", userDrinksKeyPrefix, input.UserID)
	drinkIDs, err := r.client.ZRange(ctx, userKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs for user: %w", err)
	}

	// If there are no drinks, return an empty slice
	if len(drinkIDs) == 0 {
		return &GetDrinksForUserOutput{
			Drinks: []*models.DrinkEvent{},
		}, nil
	}

	// Get all drink events in parallel using a pipeline
	pipe := r.client.Pipeline()
	drinkCommands := make(map[string]*redis.StringCmd)

	for _, drinkID := range drinkIDs {
		drinkKey := fmt.Sprintf("%s%s", drinkKeyPrefix, drinkID)
		drinkCommands[drinkID] = pipe.Get(ctx, drinkKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drink events: %w", err)
	}

	// Process the results, preserving the index order
	drinks := make([]*models.DrinkEvent, 0, len(drinkIDs))
	for _, drinkID := range drinkIDs {
		drinkJSON, err := drinkCommands[drinkID].Result()
		if err != nil {
			if err == redis.Nil {
				// Drink was deleted between getting the IDs and fetching the event
				continue
			}
			return nil, fmt.Errorf("failed to get drink event %s: %w", drinkID, err)
		}

		var drink models.DrinkEvent
		if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink event %s: %w", drinkID, err)
		}

		drinks = append(drinks, &drink)
	}

	return &GetDrinksForUserOutput{
		Drinks: drinks,
	}, nil
}

// DeleteDrink removes a single drink event from a user's log
func (r *redisRepository) DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error {
	if input == nil || input.UserID == "" || input.DrinkID == "" {
		return errors.New("input, user ID and drink ID cannot be empty")
	}

	drinkKey := fmt.Sprintf("%s%s", drinkKeyPrefix, input.DrinkID)

	// Make sure the drink exists before touching the index
	exists, err := r.client.Exists(ctx, drinkKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check drink event: %w", err)
	}
	if exists == 0 {
		return ErrDrinkNotFound
	}

	userKey := fmt.Sprintf("%s%s", userDrinksKeyPrefix, input.UserID)

	pipe := r.client.Pipeline()
	pipe.ZRem(ctx, userKey, input.DrinkID)
	pipe.Del(ctx, drinkKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete drink event: %w", err)
	}

	return nil
}

// DeleteDrinksForUser removes all drink events for a user
func (r *redisRepository) DeleteDrinksForUser(ctx context.Context, input *DeleteDrinksForUserInput) (*DeleteDrinksForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userDrinksKeyPrefix, input.UserID)
	drinkIDs, err := r.client.ZRange(ctx, userKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs for user: %w", err)
	}

	if len(drinkIDs) == 0 {
		return &DeleteDrinksForUserOutput{Deleted: 0}, nil
	}

	pipe := r.client.Pipeline()
	for _, drinkID := range drinkIDs {
		pipe.Del(ctx, fmt.Sprintf("%s%s", drinkKeyPrefix, drinkID))
	}
	pipe.Del(ctx, userKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete drink events: %w", err)
	}

	return &DeleteDrinksForUserOutput{
		Deleted: len(drinkIDs),
	}, nil
}
