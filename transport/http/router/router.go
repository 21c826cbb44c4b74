package router

import (
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/contact"
	"hotel/internal/handlers/room"
	"hotel/internal/handlers/user"
	"hotel/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	apiPrefix = "/api"

	// Largest body any booking, contact or signup payload needs.
	maxBodyBytes = 64 << 10
)

type DomainHandlers struct {
	Room    room.Handler
	Booking booking.Handler
	Contact contact.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under /api. Bodies must be JSON and small;
// bodiless requests pass through.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(apiPrefix, func(api chi.Router) {
		api.Use(
			middleware.AllowContentType(constant.ContentTypeJSON),
			middleware.RequestSize(maxBodyBytes),
		)

		r.DomainHandlers.Room.Router(api)
		r.DomainHandlers.Booking.Router(api)
		r.DomainHandlers.Contact.Router(api)
		r.DomainHandlers.User.Router(api)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
