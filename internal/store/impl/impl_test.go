package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rowanvale/templateboard/internal/domain"
	"github.com/rowanvale/templateboard/internal/storage/memstore"
	"github.com/rowanvale/templateboard/internal/store"
)

var ctx = context.Background()

func newTestStore() (store.Store, *memstore.MemStore) {
	kv := memstore.New()
	return New(kv, store.DefaultKeys()), kv
}

func post(id, code string) domain.Post {
	return domain.Post{
		ID:        id,
		Code:      code,
		Name:      "Template " + code,
		Channels:  []string{domain.NoChannels},
		Roles:     []string{domain.NoRoles},
		SourceURL: "https://discord.new/" + code,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEmptySlotsFallBackToDefaults(t *testing.T) {
	s, _ := newTestStore()

	users, err := s.Users(ctx)
	if err != nil {
		t.Error("unexpected error:", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		t.Error("unexpected error:", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}

	if _, err := s.Session(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCorruptedSlotsFallBackToDefaults(t *testing.T) {
	keys := store.DefaultKeys()
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"posts slot holds garbage", keys.Posts, "{{{not json"},
		{"posts slot holds an object", keys.Posts, `{"posts": []}`},
		{"users slot holds garbage", keys.Users, "null nonsense"},
		{"session slot holds garbage", keys.Session, "???"},
		{"session username is not textual", keys.Session, `{"username": 42}`},
		{"session username is empty", keys.Session, `{"username": ""}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, kv := newTestStore()
			if err := kv.Set(ctx, c.key, []byte(c.value)); err != nil {
				t.Fatal(err)
			}

			posts, err := s.Posts(ctx)
			if err != nil {
				t.Error("unexpected error:", err)
			}
			if len(posts) != 0 {
				t.Errorf("expected no posts, got %d", len(posts))
			}

			users, err := s.Users(ctx)
			if err != nil {
				t.Error("unexpected error:", err)
			}
			if len(users) != 0 {
				t.Errorf("expected no users, got %d", len(users))
			}

			if _, err := s.Session(ctx); !errors.Is(err, store.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestInsertPostDeduplicatesByCode(t *testing.T) {
	s, _ := newTestStore()

	first := post("id-1", "aaa")
	second := post("id-2", "bbb")
	replacement := post("id-3", "aaa")

	for _, p := range []domain.Post{first, second, replacement} {
		if err := s.InsertPost(ctx, p); err != nil {
			t.Fatal("unexpected error:", err)
		}
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	expected := []domain.Post{replacement, second}
	if diff := cmp.Diff(expected, posts); diff != "" {
		t.Error(diff)
	}
}

func TestDeletePost(t *testing.T) {
	s, _ := newTestStore()

	if err := s.InsertPost(ctx, post("id-1", "aaa")); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertPost(ctx, post("id-2", "bbb")); err != nil {
		t.Fatal(err)
	}

	if err := s.DeletePost(ctx, "id-1"); err != nil {
		t.Error("unexpected error:", err)
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 || posts[0].ID != "id-2" {
		t.Errorf("expected only id-2 to remain, got %v", posts)
	}

	if err := s.DeletePost(ctx, "id-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePostKeepsPosition(t *testing.T) {
	s, _ := newTestStore()

	if err := s.InsertPost(ctx, post("id-1", "aaa")); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertPost(ctx, post("id-2", "bbb")); err != nil {
		t.Fatal(err)
	}

	updated := post("id-1", "aaa")
	updated.UsageCount = 99
	if err := s.UpdatePost(ctx, updated); err != nil {
		t.Error("unexpected error:", err)
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if posts[1].ID != "id-1" || posts[1].UsageCount != 99 {
		t.Errorf("expected id-1 updated in place, got %v", posts)
	}

	if err := s.UpdatePost(ctx, post("ghost", "zzz")); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserByNameIgnoresCase(t *testing.T) {
	s, _ := newTestStore()

	alice := domain.User{ID: "u-1", Username: "Alice", PasswordHash: "x"}
	if err := s.InsertUser(ctx, alice); err != nil {
		t.Fatal(err)
	}

	u, err := s.GetUserByName(ctx, "aLiCe")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if u.Username != "Alice" {
		t.Errorf("expected stored casing to be preserved, got %q", u.Username)
	}

	if _, err := s.GetUserByName(ctx, "bob"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s, _ := newTestStore()

	if err := s.SaveSession(ctx, domain.Session{Username: "Alice"}); err != nil {
		t.Fatal(err)
	}

	session, err := s.Session(ctx)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if session.Username != "Alice" {
		t.Errorf("expected session for Alice, got %q", session.Username)
	}

	if err := s.ClearSession(ctx); err != nil {
		t.Error("unexpected error:", err)
	}
	if _, err := s.Session(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after logout, got %v", err)
	}

	// Clearing an already absent session stays silent.
	if err := s.ClearSession(ctx); err != nil {
		t.Error("unexpected error:", err)
	}
}
