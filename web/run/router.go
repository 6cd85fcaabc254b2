package webapp

import (
	"github.com/go-chi/chi/v5"
)

func (wa *WebApp) GetRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/search", wa.search())
	r.Get("/top", wa.top())
	r.Get("/stats", wa.stats())
	r.NotFound(notFoundHandler)

	return r
}
