// Package http is the thin transport layer: handlers decode requests,
// delegate to the domain services, and translate results to JSON.
package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/clubhub-app/clubhub/internal/domain/service"
	"github.com/clubhub-app/clubhub/pkg/logger/types"
)

type Handler struct {
	logger *types.Logger

	userService         *service.UserService
	clubService         *service.ClubService
	membershipService   *service.MembershipService
	eventService        *service.EventService
	registrationService *service.EventRegistrationService
	placesService       *service.PlacesService
}

func NewHandler(
	logger *types.Logger,
	userService *service.UserService,
	clubService *service.ClubService,
	membershipService *service.MembershipService,
	eventService *service.EventService,
	registrationService *service.EventRegistrationService,
	placesService *service.PlacesService,
) *Handler {
	return &Handler{
		logger:              logger,
		userService:         userService,
		clubService:         clubService,
		membershipService:   membershipService,
		eventService:        eventService,
		registrationService: registrationService,
		placesService:       placesService,
	}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(h.logRequests)
	r.Use(h.withUser)

	r.Post("/auth/signup", h.signUp)
	r.Post("/auth/login", h.logIn)

	r.Get("/users/{userID}", h.showUser)

	r.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Get("/places/autocomplete", h.placesAutocomplete)
		r.Get("/my-clubs", h.myClubs)
		r.Patch("/me", h.updateProfile)
		r.Delete("/me", h.deleteAccount)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.requireUser)
		r.Use(h.requireAdmin)

		r.Get("/users", h.listUsers)
		r.Get("/stats", h.showStats)
	})

	r.Route("/clubs", func(r chi.Router) {
		r.Get("/", h.listClubs)
		r.Get("/{clubID}", h.showClub)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)

			r.Post("/", h.createClub)
			r.Patch("/{clubID}", h.updateClub)
			r.Delete("/{clubID}", h.deleteClub)
			r.Post("/{clubID}/enable", h.enableClub)
			r.Post("/{clubID}/disable", h.disableClub)
			r.Get("/{clubID}/members", h.listMembers)

			r.Post("/{clubID}/membership", h.joinClub)
			r.Delete("/{clubID}/membership", h.leaveClub)
			r.Post("/{clubID}/memberships/{membershipID}/approve", h.approveMembership)
			r.Post("/{clubID}/memberships/{membershipID}/enable", h.enableMembership)
			r.Post("/{clubID}/memberships/{membershipID}/disable", h.disableMembership)
			r.Delete("/{clubID}/memberships/{membershipID}", h.removeMembership)

			r.Get("/{clubID}/events", h.listEvents)
			r.Post("/{clubID}/events", h.createEvent)
			r.Get("/{clubID}/events/{eventID}", h.showEvent)
			r.Patch("/{clubID}/events/{eventID}", h.updateEvent)
			r.Delete("/{clubID}/events/{eventID}", h.deleteEvent)

			r.Get("/{clubID}/events/{eventID}/registrations", h.listRegistrations)
			r.Post("/{clubID}/events/{eventID}/registrations", h.register)
			r.Delete("/{clubID}/events/{eventID}/registrations/{registrationID}", h.cancelRegistration)
			r.Post("/{clubID}/events/{eventID}/registrations/{registrationID}/approve", h.approveRegistration)
		})
	})

	return r
}
