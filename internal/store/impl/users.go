package impl

import (
	"context"
	"strings"

	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/store"
)

func (s *kvStore) Users(ctx context.Context) ([]domain.User, error) {
	return readSlot(ctx, s, s.keys.Users, []domain.User{})
}

func (s *kvStore) GetUserByName(ctx context.Context, username string) (domain.User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (s *kvStore) InsertUser(ctx context.Context, user domain.User) error {
	unlock := s.locks.Lock(s.keys.Users)
	defer unlock()

	users, err := s.Users(ctx)
	if err != nil {
		return err
	}

	return writeSlot(ctx, s, s.keys.Users, append(users, user))
}
