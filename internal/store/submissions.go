package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"vietmarket/internal/models"
)

// productsKey is the fixed namespaced key holding the JSON-serialized list
// of user-authored products.
const productsKey = "viet_market_products"

// redisCommands is the slice of the client the store actually uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SubmissionStore keeps locally authored products in Redis under a single
// key, mirroring the storefront's client-side storage contract: one key,
// one JSON list, overwritten whole on every save.
type SubmissionStore struct {
	rdb redisCommands
}

func NewSubmissionStore(rdb *redis.Client) *SubmissionStore {
	return &SubmissionStore{rdb: rdb}
}

// Load returns the persisted submissions. An absent key yields an empty
// list; a corrupt value is logged and treated as empty rather than
// failing startup, matching the feed's degrade-only error policy.
func (s *SubmissionStore) Load(ctx context.Context) ([]models.Product, error) {
	raw, err := s.rdb.Get(ctx, productsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Printf("[STORE] [WARN] %s holds corrupt JSON, treating as empty: %v", productsKey, err)
		return nil, nil
	}
	return products, nil
}

// Save overwrites the submission list. Callers are responsible for
// filtering out remote-provenance records first; the store persists
// whatever it is given.
func (s *SubmissionStore) Save(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, productsKey, data, 0).Err()
}
