package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-recipe-book/internal/logger"
	"github.com/sbilibin2017/gw-recipe-book/internal/models"
)

// RecipeCacheRepository caches recipe details in Redis.
type RecipeCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRecipeCacheRepository creates a cache whose entries live for expiration.
func NewRecipeCacheRepository(client *redis.Client, expiration time.Duration) *RecipeCacheRepository {
	return &RecipeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func recipeKey(id int64) string {
	return fmt.Sprintf("recipe:%d", id)
}

// Get returns the cached detail of recipe id, or nil on a cache miss.
func (r *RecipeCacheRepository) Get(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	key := recipeKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		return nil, err
	}

	var detail models.RecipeDetail
	if err := json.Unmarshal(val, &detail); err != nil {
		logger.Log.Infow("cache decode", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache hit", "key", key, "result", detail.ID)
	return &detail, nil
}

// Set stores detail under its recipe id.
func (r *RecipeCacheRepository) Set(ctx context.Context, detail *models.RecipeDetail) error {
	key := recipeKey(detail.ID)

	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}

// Delete drops the cached detail of recipe id.
func (r *RecipeCacheRepository) Delete(ctx context.Context, id int64) error {
	key := recipeKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache delete", "key", key, "error", err)

	return err
}
