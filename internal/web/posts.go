package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type submission struct {
	URL string `json:"url"`
}

func ListPosts(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.service.ListPosts(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to list posts")
			respondError(w, GetCode(err), "internal error")
			return
		}
		respond(w, http.StatusOK, posts)
	}
}

func SubmitTemplate(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		u, _ := GetSession(ctx)

		var body submission
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, http.StatusBadRequest, "malformed request body")
			return
		}

		post, err := h.service.SubmitTemplate(ctx, body.URL, u.Username)
		if err != nil {
			respondError(w, GetCode(err), err.Error())
			return
		}

		respond(w, http.StatusCreated, post)
	}
}

func DeletePost(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		u, _ := GetSession(ctx)
		id := chi.URLParam(r, "id")

		if err := h.service.DeletePost(ctx, id, u.Username); err != nil {
			respondError(w, GetCode(err), err.Error())
			return
		}

		respond(w, http.StatusNoContent, nil)
	}
}
