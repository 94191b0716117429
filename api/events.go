package api

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arenakit/arena/core/client"
)

// Event is a sporting event record.
type Event struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	CoverImage          string    `json:"cover_image"`
	EventType           string    `json:"event_type"`
	Level               string    `json:"level"`
	Status              string    `json:"status"`
	Location            string    `json:"location"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	RegistrationStart   time.Time `json:"registration_start"`
	RegistrationEnd     time.Time `json:"registration_end"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	RegistrationFee     string    `json:"registration_fee"`
	Rules               string    `json:"rules"`
	Requirements        string    `json:"requirements"`
	Prizes              string    `json:"prizes"`
	Organizer           int64     `json:"organizer"`
	ContactPerson       string    `json:"contact_person"`
	ContactPhone        string    `json:"contact_phone"`
	ContactEmail        string    `json:"contact_email"`
	ViewCount           int       `json:"view_count"`
	IsFeatured          bool      `json:"is_featured"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// RegistrationWindow reports whether sign-up for an event is currently
// possible and why not otherwise.
type RegistrationWindow struct {
	CanRegister bool   `json:"can_register"`
	Reason      string `json:"reason"`
}

// EventsService covers the event catalogue: public browsing, the
// administrator's lifecycle operations, and per-event sub-resources.
type EventsService struct {
	client *client.Client
}

// List returns a page of events. Filters like event_type, level, and
// status go through ListParams.Filters.
func (s *EventsService) List(ctx context.Context, params ListParams) (Page[Event], error) {
	var page Page[Event]
	err := s.client.Get(ctx, "events/", params.Values(), &page)
	return page, err
}

// Get returns one event. The server counts the view.
func (s *EventsService) Get(ctx context.Context, id int64) (Event, error) {
	var ev Event
	err := s.client.Get(ctx, fmt.Sprintf("events/%d/", id), nil, &ev)
	return ev, err
}

// Create adds an event. Administrator only.
func (s *EventsService) Create(ctx context.Context, ev Event) (Event, error) {
	var out Event
	err := s.client.Post(ctx, "events/", ev, &out)
	return out, err
}

// Update replaces an event. Administrator only.
func (s *EventsService) Update(ctx context.Context, id int64, ev Event) (Event, error) {
	var out Event
	err := s.client.Put(ctx, fmt.Sprintf("events/%d/", id), ev, &out)
	return out, err
}

// Delete removes an event. Administrator only.
func (s *EventsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("events/%d/", id))
}

// Publish makes an event visible to participants. Administrator only.
func (s *EventsService) Publish(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("events/%d/publish/", id), nil, nil)
}

// Unpublish withdraws an event from the public catalogue. Administrator only.
func (s *EventsService) Unpublish(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("events/%d/unpublish/", id), nil, nil)
}

// Click records a catalogue click for popularity ranking.
func (s *EventsService) Click(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("events/%d/click/", id), nil, nil)
}

// Featured returns the events promoted on the home page.
func (s *EventsService) Featured(ctx context.Context) ([]Event, error) {
	var out []Event
	err := s.client.Get(ctx, "events/featured/", nil, &out)
	return out, err
}

// Upcoming returns events whose start time lies ahead.
func (s *EventsService) Upcoming(ctx context.Context) ([]Event, error) {
	var out []Event
	err := s.client.Get(ctx, "events/upcoming/", nil, &out)
	return out, err
}

// Ongoing returns events currently in progress.
func (s *EventsService) Ongoing(ctx context.Context) ([]Event, error) {
	var out []Event
	err := s.client.Get(ctx, "events/ongoing/", nil, &out)
	return out, err
}

// CanRegister checks whether the current user may sign up for an event.
func (s *EventsService) CanRegister(ctx context.Context, eventID int64) (RegistrationWindow, error) {
	var out RegistrationWindow
	err := s.client.Get(ctx, "events/can_register/", urlValues("event", eventID), &out)
	return out, err
}

// Registrations returns the sign-ups of one event. Administrator only.
func (s *EventsService) Registrations(ctx context.Context, id int64) ([]Registration, error) {
	var out []Registration
	err := s.client.Get(ctx, fmt.Sprintf("events/%d/registrations/", id), nil, &out)
	return out, err
}

// Results returns the published results of one event.
func (s *EventsService) Results(ctx context.Context, id int64) ([]Result, error) {
	var out []Result
	err := s.client.Get(ctx, fmt.Sprintf("events/%d/results/", id), nil, &out)
	return out, err
}

// Announcements returns the announcements attached to one event.
func (s *EventsService) Announcements(ctx context.Context, id int64) ([]Announcement, error) {
	var out []Announcement
	err := s.client.Get(ctx, fmt.Sprintf("events/%d/announcements/", id), nil, &out)
	return out, err
}

// UploadImage stores an event image and returns its public path. The
// body must be the raw image bytes; filename decides the extension.
func (s *EventsService) UploadImage(ctx context.Context, filename string, body io.Reader) (string, error) {
	form, contentType, err := encodeFileForm(filename, body)
	if err != nil {
		return "", err
	}
	var out struct {
		Message string `json:"message"`
		Image   string `json:"image"`
	}
	if err := s.client.PostMultipart(ctx, "events/upload_image/", form, contentType, &out); err != nil {
		return "", err
	}
	return out.Image, nil
}
