package api

import (
	"github.com/arenakit/arena/core/client"
)

// API bundles every resource service over a shared transport client. All
// services go through the same client, so the bearer stage, failure
// notices, and the session-expiry flow apply uniformly.
type API struct {
	Auth          *AuthService
	Users         *UsersService
	Events        *EventsService
	RefereeAccess *RefereeAccessService
	Registrations *RegistrationsService
	Results       *ResultsService
	Announcements *AnnouncementsService
	Interactions  *InteractionsService
	Carousels     *CarouselsService
	Feedback      *FeedbackService
	Uploads       *UploadsService
	Statistics    *StatisticsService
}

// New builds the full service set over c.
func New(c *client.Client) *API {
	return &API{
		Auth:          &AuthService{client: c},
		Users:         &UsersService{client: c},
		Events:        &EventsService{client: c},
		RefereeAccess: &RefereeAccessService{client: c},
		Registrations: &RegistrationsService{client: c},
		Results:       &ResultsService{client: c},
		Announcements: &AnnouncementsService{client: c},
		Interactions:  &InteractionsService{client: c},
		Carousels:     &CarouselsService{client: c},
		Feedback:      &FeedbackService{client: c},
		Uploads:       &UploadsService{client: c},
		Statistics:    &StatisticsService{client: c},
	}
}
