package router

import (
	"farhatna/internal/handlers/auth"
	"farhatna/internal/handlers/booking"
	"farhatna/internal/handlers/health"
	"farhatna/internal/handlers/supplier"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Supplier supplier.Handler
	Booking  booking.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Supplier.Router(router)
	r.DomainHandlers.Booking.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
