package router

import (
	"github.com/go-chi/chi/v5"

	"mesa/internal/handlers/availability"
	"mesa/internal/handlers/reservation"
	"mesa/internal/handlers/schedule"
)

type DomainHandlers struct {
	Availability availability.Handler
	Reservation  reservation.Handler
	Schedule     schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
