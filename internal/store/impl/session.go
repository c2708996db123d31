package impl

import (
	"context"
	"errors"

	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/storage"
	"github.com/rowanvale/templateboard/internal/store"
)

func (s *kvStore) Session(ctx context.Context) (domain.Session, error) {
	session, err := readSlot(ctx, s, s.keys.Session, domain.Session{})
	if err != nil {
		return domain.Session{}, err
	}

	// A slot whose username field is missing or not textual is treated as
	// logged out, same as an absent slot.
	if session.Anonymous() {
		return domain.Session{}, store.ErrNotFound
	}
	return session, nil
}

func (s *kvStore) SaveSession(ctx context.Context, session domain.Session) error {
	unlock := s.locks.Lock(s.keys.Session)
	defer unlock()

	return writeSlot(ctx, s, s.keys.Session, session)
}

func (s *kvStore) ClearSession(ctx context.Context) error {
	unlock := s.locks.Lock(s.keys.Session)
	defer unlock()

	err := s.kv.Remove(ctx, s.keys.Session)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return store.ErrInternal
	}
	return nil
}
