package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListingCache keeps rendered pages of the public listing and search
// queries for a short TTL. Entries are never invalidated explicitly;
// staleness is bounded by the TTL.
type ListingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{Client: client, TTL: ttl}
}

func (c *ListingCache) RestaurantsPageKey(page int) string {
	return "restaurants:page:" + strconv.Itoa(page)
}

func (c *ListingCache) SearchKey(query string, page int) string {
	return "restaurants:search:" + query + ":" + strconv.Itoa(page)
}

func (c *ListingCache) CategoryPageKey(slug string, page int) string {
	return "category:" + slug + ":page:" + strconv.Itoa(page)
}

// GetJSON reports whether the key was present and, if so, unmarshals
// the cached value into dest.
func (c *ListingCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ListingCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
