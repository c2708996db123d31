package redistore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/storage"
)

// RedisStore maps keys straight onto Redis strings. Values never expire; the
// board owns the lifecycle of its slots.
type RedisStore struct {
	client *redis.Client
}

func New(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("redis connection failed")
		return nil, storage.ErrInternal
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Str("key", key).Msg("redis get failed")
		return nil, storage.ErrInternal
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis set failed")
		return storage.ErrInternal
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("redis del failed")
		return storage.ErrInternal
	}
	if removed == 0 {
		return storage.ErrNotExist
	}
	return nil
}
