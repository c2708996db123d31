package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rowanvale/templateboard/internal/domain"
)

var ctx = context.Background()

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/abcd1234":
			w.Write([]byte(`{
				"code": "abcd1234",
				"name": "Gaming Hub",
				"usage_count": 42,
				"serialized_source_guild": {
					"channels": [{"name": "general", "position": 1}, {"name": "welcome", "position": 0}],
					"roles": [{"name": "@everyone"}, {"name": "Mod"}]
				}
			}`))
		case "/garbled":
			w.Write([]byte("<!doctype html>"))
		case "/redirected":
			// A redirect status without a Location header is handed back to
			// the caller as-is, template body and all.
			w.WriteHeader(http.StatusFound)
			w.Write([]byte(`{"code": "redirected", "name": "Not A Real Answer"}`))
		default:
			http.Error(w, "Unknown Template", http.StatusNotFound)
		}
	}))
	defer server.Close()

	imp := New(&http.Client{}, server.URL)

	t.Run("valid template", func(t *testing.T) {
		tmpl, err := imp.Fetch(ctx, "abcd1234")
		if err != nil {
			t.Fatal("unexpected error:", err)
		}

		expected := domain.Template{
			Code:       "abcd1234",
			Name:       "Gaming Hub",
			UsageCount: 42,
			SerializedSourceGuild: domain.SourceGuild{
				Channels: []domain.GuildChannel{
					{Name: "general", Position: 1},
					{Name: "welcome", Position: 0},
				},
				Roles: []domain.GuildRole{
					{Name: "@everyone"},
					{Name: "Mod"},
				},
			},
		}
		if diff := cmp.Diff(expected, tmpl); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := imp.Fetch(ctx, "nope")
		if !errors.Is(err, ErrLookup) {
			t.Errorf("expected ErrLookup, got %v", err)
		}
	})

	t.Run("unparsable body", func(t *testing.T) {
		_, err := imp.Fetch(ctx, "garbled")
		if !errors.Is(err, ErrLookup) {
			t.Errorf("expected ErrLookup, got %v", err)
		}
	})

	t.Run("non-2xx status with a template body", func(t *testing.T) {
		_, err := imp.Fetch(ctx, "redirected")
		if !errors.Is(err, ErrLookup) {
			t.Errorf("expected ErrLookup, got %v", err)
		}
	})
}

func TestFetchDoesNotRetryClientErrors(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "Unknown Template", http.StatusNotFound)
	}))
	defer server.Close()

	imp := New(&http.Client{}, server.URL)
	_, err := imp.Fetch(ctx, "gone")
	if !errors.Is(err, ErrLookup) {
		t.Errorf("expected ErrLookup, got %v", err)
	}
	if requests != 1 {
		t.Errorf("expected a single request, got %d", requests)
	}
}
