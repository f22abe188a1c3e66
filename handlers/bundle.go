// File: handlers/bundle.go
package handlers

import (
	"tripplanner/services/search"
	sessionSvc "tripplanner/services/session"
	"tripplanner/services/trip"
)

// HandlerBundle groups the services the HTTP handlers depend on.
type HandlerBundle struct {
	SessionSvc sessionSvc.SessionService
	TripSvc    trip.TripService
	SearchSvc  search.SearchService
}

func NewHandlerBundle(sessions sessionSvc.SessionService, trips trip.TripService, searcher search.SearchService) *HandlerBundle {
	return &HandlerBundle{
		SessionSvc: sessions,
		TripSvc:    trips,
		SearchSvc:  searcher,
	}
}
