package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"vietmarket/internal/models"
)

const sessionKeyPrefix = "viet_market_user:"

// ErrSessionNotFound is returned when no session exists for the user id.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the fabricated guest identities for the lifetime of
// their access token.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) SaveUser(ctx context.Context, user models.User, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+user.ID, data, ttl).Err()
}

func (s *SessionStore) GetUser(ctx context.Context, userID string) (models.User, error) {
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return models.User{}, ErrSessionNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *SessionStore) DeleteUser(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+userID).Err()
}
