package web

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs"
	"github.com/rowanvale/templateboard/internal/config"
	"github.com/rowanvale/templateboard/internal/service"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
	LogoutRoute = "/logout"
	PostsPath   = "/posts"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, errorBody{Error: message})
}
