package api

import (
	"context"

	"github.com/arenakit/arena/core/client"
)

// EventAssignment links a referee account to an event they may record
// results for.
type EventAssignment struct {
	ID          int64  `json:"id"`
	Event       int64  `json:"event"`
	EventTitle  string `json:"event_title"`
	Referee     int64  `json:"referee"`
	RefereeName string `json:"referee_name"`
	CreatedAt   string `json:"created_at"`
}

// AssignmentSummary aggregates a referee's event access for the
// administrator overview.
type AssignmentSummary struct {
	Referee     int64   `json:"referee"`
	RefereeName string  `json:"referee_name"`
	EventCount  int     `json:"event_count"`
	EventIDs    []int64 `json:"event_ids"`
}

// RefereeAccessService manages which events each referee may score.
// Listing and assigning are administrator operations; MyEvents serves
// the signed-in referee.
type RefereeAccessService struct {
	client *client.Client
}

// List returns a page of assignments.
func (s *RefereeAccessService) List(ctx context.Context, params ListParams) (Page[EventAssignment], error) {
	var page Page[EventAssignment]
	err := s.client.Get(ctx, "events/assignments/", params.Values(), &page)
	return page, err
}

// Assign replaces a referee's accessible event set.
func (s *RefereeAccessService) Assign(ctx context.Context, refereeID int64, eventIDs []int64) error {
	return s.client.Post(ctx, "events/assignments/assign/", map[string]any{
		"referee":   refereeID,
		"event_ids": eventIDs,
	}, nil)
}

// MyEvents returns the events assigned to the current referee.
func (s *RefereeAccessService) MyEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	err := s.client.Get(ctx, "events/assignments/my_events/", nil, &out)
	return out, err
}

// Summary returns per-referee assignment aggregates.
func (s *RefereeAccessService) Summary(ctx context.Context, params ListParams) ([]AssignmentSummary, error) {
	var out []AssignmentSummary
	err := s.client.Get(ctx, "events/assignments/summary/", params.Values(), &out)
	return out, err
}
