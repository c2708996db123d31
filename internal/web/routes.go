package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Route("/", func(r chi.Router) {
		r.Post(LoginRoute, Login(h))
		r.Post(SignUpRoute, SignUp(h))
		r.Post(LogoutRoute, Logout(h))
	})

	r.Route(PostsPath, func(r chi.Router) {
		r.Get("/", ListPosts(h))
		r.Method(http.MethodPost, "/", authenticated(SubmitTemplate(h)))
		r.Method(http.MethodDelete, "/{id}", authenticated(DeletePost(h)))
	})
}
