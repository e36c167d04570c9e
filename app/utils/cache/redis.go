package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/luxystore/luxy-api/app/models"
)

const (
	productsCacheKey = "catalog:products"
	productsCacheTTL = 5 * time.Minute
)

// ProductCache is a cache-aside layer over the product listing. Misses and
// errors fall back to the database; the caller repopulates after a DB read.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache connects to Redis at addr. Returns an error when the server
// is unreachable so callers can run uncached instead of failing startup.
func NewProductCache(addr string) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("✅ Connected to Redis at %s", addr)

	return &ProductCache{client: client}, nil
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, error) {
	payload, err := c.client.Get(ctx, productsCacheKey).Result()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		return nil, fmt.Errorf("corrupt product cache entry: %w", err)
	}
	return products, nil
}

func (c *ProductCache) SetProducts(ctx context.Context, products []models.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productsCacheKey, payload, productsCacheTTL).Err()
}

// Invalidate drops the cached listing, called after any product write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, productsCacheKey).Err(); err != nil {
		log.Printf("ProductCache: failed to invalidate: %v", err)
	}
}

func (c *ProductCache) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
