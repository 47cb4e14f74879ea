package caching

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courseadmin/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService fronts per-ID record lookups. Every method is
// best-effort: callers treat errors as cache misses, never as operation
// failures. A nil record with a nil error is a miss.
type CacheService interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	SetCategory(ctx context.Context, category *models.Category, ttl time.Duration) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	GetSubCategory(ctx context.Context, id uuid.UUID) (*models.SubCategory, error)
	SetSubCategory(ctx context.Context, subcategory *models.SubCategory, ttl time.Duration) error
	DeleteSubCategory(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func categoryKey(id uuid.UUID) string {
	return "category:" + id.String()
}

func subCategoryKey(id uuid.UUID) string {
	return "subcategory:" + id.String()
}

func (c *redisCacheService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	data, err := c.client.Get(ctx, categoryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	category := &models.Category{}
	if err := json.Unmarshal(data, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (c *redisCacheService) SetCategory(ctx context.Context, category *models.Category, ttl time.Duration) error {
	data, err := json.Marshal(category)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoryKey(category.ID), data, ttl).Err()
}

func (c *redisCacheService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, categoryKey(id)).Err()
}

func (c *redisCacheService) GetSubCategory(ctx context.Context, id uuid.UUID) (*models.SubCategory, error) {
	data, err := c.client.Get(ctx, subCategoryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	subcategory := &models.SubCategory{}
	if err := json.Unmarshal(data, subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (c *redisCacheService) SetSubCategory(ctx context.Context, subcategory *models.SubCategory, ttl time.Duration) error {
	data, err := json.Marshal(subcategory)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, subCategoryKey(subcategory.ID), data, ttl).Err()
}

func (c *redisCacheService) DeleteSubCategory(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, subCategoryKey(id)).Err()
}

func (c *redisCacheService) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
