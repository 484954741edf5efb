package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"esim4travel/internal/models"
)

// Session cart: cart:{session_id} -> JSON cart
const keyCart = "cart:%s"

const updateRetries = 5

// RedisStore keeps carts in Redis so multiple storefront instances share
// session state. Updates use WATCH/MULTI so concurrent mutations of one
// session retry instead of losing writes.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// NewRedisClient dials Redis at addr with a short operation timeout.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func cartKey(sessionID string) string {
	return fmt.Sprintf(keyCart, sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return decodeCart(data)
}

func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(*models.Cart) error) (*models.Cart, error) {
	key := cartKey(sessionID)
	var result *models.Cart

	txn := func(tx *redis.Tx) error {
		cart := models.NewCart()
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if err == nil {
			if cart, err = decodeCart(data); err != nil {
				return err
			}
		}

		if err := fn(cart); err != nil {
			return err
		}

		encoded, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("failed to encode cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, TTL)
			return nil
		})
		if err != nil {
			return err
		}
		result = cart
		return nil
	}

	for i := 0; i < updateRetries; i++ {
		err := s.rdb.Watch(ctx, txn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue // another request touched this session's cart, retry
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, fmt.Errorf("cart update for session %s kept conflicting", sessionID)
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	encoded, err := json.Marshal(models.NewCart())
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, cartKey(sessionID), encoded, TTL).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func decodeCart(data []byte) (*models.Cart, error) {
	cart := models.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}
