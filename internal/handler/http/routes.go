package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the catalog is public; everything else requires a verified identity
	router.Group(func(r chi.Router) {
		r.Get("/books", h.getAllBooks)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/login", h.login)
		r.Post("/me", h.profile)

		r.Post("/books", h.createBook)
		r.Get("/book/{bookId}", h.getBook)
		r.Delete("/book/{bookId}", h.deleteBook)

		r.Post("/orders", h.createOrder)
		r.Get("/orders", h.getOrders)
	})

	return router
}
