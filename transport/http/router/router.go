package router

import (
	"journal/internal/handlers/auth"
	"journal/internal/handlers/photo"
	"journal/internal/handlers/subscription"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Photo        photo.Handler
	Subscription subscription.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Photo.Router(routerGroup)
		r.DomainHandlers.Subscription.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
