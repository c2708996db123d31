package core

import (
	"context"
	"errors"
	"testing"

	"github.com/rowanvale/templateboard/internal/service"
	"github.com/rowanvale/templateboard/internal/state"
	"github.com/rowanvale/templateboard/internal/storage/memstore"
	"github.com/rowanvale/templateboard/internal/store"
	storeimpl "github.com/rowanvale/templateboard/internal/store/impl"
	"golang.org/x/crypto/bcrypt"
)

var ctx = context.Background()

func newTestService() (service.Service, store.Store) {
	boardStore := storeimpl.New(memstore.New(), store.DefaultKeys())
	svc := New(&state.State{Store: boardStore}, nil, nil)
	return svc, boardStore
}

func TestCreateUser(t *testing.T) {
	svc, boardStore := newTestService()

	u, err := svc.CreateUser(ctx, " Alice ", "hunter2")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if u.Username != "Alice" {
		t.Errorf("expected trimmed username \"Alice\", got %q", u.Username)
	}
	if u.ID == "" {
		t.Error("expected a generated id")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")); err != nil {
		t.Error("stored hash does not match the password:", err)
	}

	stored, err := boardStore.GetUserByName(ctx, "alice")
	if err != nil {
		t.Fatal("user was not persisted:", err)
	}
	if stored.Username != "Alice" {
		t.Errorf("expected stored casing to be preserved, got %q", stored.Username)
	}
}

func TestCreateUserRejectsCaseInsensitiveDuplicates(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.CreateUser(ctx, "Alice", "hunter2"); err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err := svc.CreateUser(ctx, "alice", "different")
	if !errors.Is(err, service.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestCreateUserValidatesInput(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "hunter2"},
		{"empty username", "", "hunter2"},
		{"empty password", "alice", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, c.username, c.password)
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.CreateUser(ctx, "Alice", "hunter2"); err != nil {
		t.Fatal("unexpected error:", err)
	}

	t.Run("correct credentials", func(t *testing.T) {
		u, authenticated, err := svc.AuthenticateUser(ctx, "alice", "hunter2")
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if !authenticated {
			t.Fatal("expected authentication to succeed")
		}
		if u.Username != "Alice" {
			t.Errorf("expected the registered casing, got %q", u.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, authenticated, err := svc.AuthenticateUser(ctx, "Alice", "wrong")
		if err != nil {
			t.Error("unexpected error:", err)
		}
		if authenticated {
			t.Error("expected authentication to fail")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, authenticated, err := svc.AuthenticateUser(ctx, "nobody", "hunter2")
		if err != nil {
			t.Error("unexpected error:", err)
		}
		if authenticated {
			t.Error("expected authentication to fail")
		}
	})
}
