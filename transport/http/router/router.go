package router

import (
	"tie/internal/handlers/catalog"
	"tie/internal/handlers/reservation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Reservation reservation.Handler
	Catalog     catalog.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
