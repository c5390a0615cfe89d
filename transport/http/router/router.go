package router

import (
	"github.com/go-chi/chi/v5"

	"agenda/internal/handlers/availability"
	"agenda/internal/handlers/blackout"
	"agenda/internal/handlers/policy"
	"agenda/internal/handlers/reservation"
	"agenda/internal/handlers/trust"
	"agenda/internal/handlers/waitlist"
	"agenda/internal/handlers/workinghours"
	"agenda/transport/http/middleware"
)

type DomainHandlers struct {
	Availability availability.Handler
	Reservation  reservation.Handler
	Waitlist     waitlist.Handler
	Trust        trust.Handler
	WorkingHours workinghours.Handler
	Blackout     blackout.Handler
	Policy       policy.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

// SetupRoutes mounts three route groups: public ones keyed by the tenant
// header, token links that carry their own credential, and authenticated
// ones whose tenant comes from the token. Admin routes stack RequireAdmin
// on top.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(public chi.Router) {
			public.Use(r.Auth.Tenant)
			r.DomainHandlers.Availability.Router(public)
		})

		routerGroup.Group(func(links chi.Router) {
			r.DomainHandlers.Reservation.RouterPublic(links)
			r.DomainHandlers.Waitlist.RouterPublic(links)
		})

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(r.Auth.Authenticate)
			r.DomainHandlers.Reservation.Router(authed)
			r.DomainHandlers.Waitlist.Router(authed)
			r.DomainHandlers.Trust.Router(authed)
		})

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(r.Auth.Authenticate, r.Auth.RequireAdmin)
			r.DomainHandlers.WorkingHours.Router(admin)
			r.DomainHandlers.Blackout.Router(admin)
			r.DomainHandlers.Policy.Router(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
