package impl

import (
	"context"
	"encoding/json"
	"errors"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/storage"
	"github.com/rowanvale/templateboard/internal/store"
)

type kvStore struct {
	keys  store.Keys
	kv    storage.Storage
	locks *mutexes.MutexMap
}

func New(kv storage.Storage, keys store.Keys) store.Store {
	locks := mutexes.MutexMap{}
	return &kvStore{
		keys:  keys,
		kv:    kv,
		locks: &locks,
	}
}

// readSlot deserializes a slot into T. An absent slot or one holding text
// that does not parse yields the fallback rather than an error: a corrupted
// record must never block the whole board.
func readSlot[T any](ctx context.Context, s *kvStore, key string, fallback T) (T, error) {
	value, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return fallback, nil
		}
		log.Error().Err(err).Str("key", key).Msg("slot read failed")
		return fallback, store.ErrInternal
	}

	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("corrupted slot, falling back to default")
		return fallback, nil
	}
	return out, nil
}

func writeSlot(ctx context.Context, s *kvStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("slot serialization failed")
		return store.ErrInternal
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return store.ErrInternal
	}
	return nil
}
