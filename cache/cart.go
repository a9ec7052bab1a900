package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/velora-store/storefront-api/models"
)

var ErrCartNotFound = errors.New("cart not found")

// CartStore keeps guest carts in Redis. Carts are client-authoritative
// state, so losing one to TTL expiry is harmless.
type CartStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{
		client:  client,
		baseTTL: 24 * time.Hour,
	}
}

func (s *CartStore) Get(ctx context.Context, guestID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(guestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &cart, nil
}

func (s *CartStore) Set(ctx context.Context, guestID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// Jitter spreads expiry so abandoned carts don't all drop at once.
	ttl := s.baseTTL + time.Duration(rand.Intn(30))*time.Minute
	if err := s.client.Set(ctx, cartKey(guestID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, guestID string) error {
	if err := s.client.Del(ctx, cartKey(guestID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(guestID string) string {
	return fmt.Sprintf("cart:%s", guestID)
}
