package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/service"
	"github.com/rowanvale/templateboard/internal/store"
	"github.com/rowanvale/templateboard/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser confirms the user's identity and, if their credentials are
// correct, returns data to be put in the login session. The failure answer
// never says whether the username or the password was wrong.
func (s *AppService) AuthenticateUser(ctx context.Context, username, password string) (u domain.User, authenticated bool, err error) {
	username = strings.TrimSpace(username)

	err = errors.Join(validate.Username(username), validate.Password(password))
	if err != nil {
		err = fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
		return
	}

	u, err = s.Store.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	authenticated = err == nil
	err = nil
	return
}

func (s *AppService) CreateUser(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	err := validate.SignUpForm(username, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	// Uniqueness is case-insensitive even though the stored name keeps the
	// case the user typed.
	_, err = s.Store.GetUserByName(ctx, username)
	if err == nil {
		return domain.User{}, fmt.Errorf("%w: username already exists", service.ErrConflict)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.InsertUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
