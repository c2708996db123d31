package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/importer"
	"github.com/rowanvale/templateboard/internal/service"
	"github.com/rowanvale/templateboard/internal/store"
)

const SessionKey = "user"

type Session struct {
	Username string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				handler.ServeHTTP(w, r)
				return
			}
			respondError(w, http.StatusUnauthorized, "login first")
		})
	}
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionBody struct {
	Username string `json:"username"`
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := handler.SessionManager.Load(r)

		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			respondError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		u, authenticated, err := handler.service.AuthenticateUser(ctx, creds.Username, creds.Password)
		if err != nil && !errors.Is(err, service.ErrInvalidInput) {
			log.Error().Err(err).Msg("authentication failure")
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if !authenticated {
			// Deliberately vague: never say which of the two was wrong.
			respondError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			Username: u.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create and load session")
			respondError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		respond(w, http.StatusOK, sessionBody{Username: u.Username})
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("session destruction failed")
		}
		respond(w, http.StatusNoContent, nil)
	}
}

// GetCode maps service and store errors onto response status codes.
func GetCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, importer.ErrLookup):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
