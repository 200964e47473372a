package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "hoa:session:"

// RedisStore shares sessions between instances.
type RedisStore struct {
	client *redis.Client
}

var _ interfaces.ISessionStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, id string, sess entities.AuthSession, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+id, raw, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (entities.AuthSession, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.AuthSession{}, nil
	}
	if err != nil {
		return entities.AuthSession{}, err
	}
	var sess entities.AuthSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return entities.AuthSession{}, err
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}
