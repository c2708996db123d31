package web

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func SignUp(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := h.SessionManager.Load(r)

		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			respondError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		u, err := h.service.CreateUser(ctx, creds.Username, creds.Password)
		if err != nil {
			respondError(w, GetCode(err), err.Error())
			return
		}

		// Signing up logs the new user in; no separate login step.
		if err := session.PutObject(w, SessionKey, Session{Username: u.Username}); err != nil {
			log.Error().Err(err).Msg("failed to create and load session")
			respondError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		respond(w, http.StatusCreated, sessionBody{Username: u.Username})
	}
}
