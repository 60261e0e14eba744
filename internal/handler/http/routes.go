package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withCORS(), withGZip)

	// set before any sub-router is mounted so they inherit both handlers
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Get("/", h.root)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/profile", h.profile)
	})

	router.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", h.listBlogs)
		r.Get("/{id}", h.getBlog)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createBlog)
			r.Put("/{id}", h.updateBlog)
			r.Delete("/{id}", h.deleteBlog)
		})
	})

	return router
}
