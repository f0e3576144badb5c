package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	RegisterRoutes(r, handler)
	return r
}

func RegisterRoutes(r chi.Router, handler *Handler) {
	r.NotFound(handler.HandleNotFound)
	r.MethodNotAllowed(handler.HandleMethodNotAllowed)

	r.Get("/health", handler.HandleHealth)
	r.Post("/start-orders", handler.HandleStartOrders)
}
