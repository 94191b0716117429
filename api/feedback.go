package api

import (
	"context"
	"fmt"
	"time"

	"github.com/arenakit/arena/core/client"
)

// FeedbackTicket is a user-submitted report or suggestion.
type FeedbackTicket struct {
	ID           int64      `json:"id"`
	User         *int64     `json:"user"`
	UserName     string     `json:"user_name"`
	FeedbackType string     `json:"feedback_type"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Images       []string   `json:"images"`
	ContactInfo  string     `json:"contact_info"`
	Event        *int64     `json:"event"`
	EventTitle   string     `json:"event_title"`
	Status       string     `json:"status"`
	Reply        string     `json:"reply"`
	Handler      *int64     `json:"handler"`
	HandlerName  string     `json:"handler_name"`
	HandledAt    *time.Time `json:"handled_at"`
	IsAnonymous  bool       `json:"is_anonymous"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FeedbackRequest is the submission payload.
type FeedbackRequest struct {
	FeedbackType string   `json:"feedback_type"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Images       []string `json:"images,omitempty"`
	ContactInfo  string   `json:"contact_info,omitempty"`
	Event        *int64   `json:"event,omitempty"`
	IsAnonymous  bool     `json:"is_anonymous,omitempty"`
}

// FeedbackStats aggregates tickets by handling state for the
// administrator dashboard.
type FeedbackStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// FeedbackService covers ticket submission by users and handling by
// administrators.
type FeedbackService struct {
	client *client.Client
}

// List returns a page of tickets the current user may see.
func (s *FeedbackService) List(ctx context.Context, params ListParams) (Page[FeedbackTicket], error) {
	var page Page[FeedbackTicket]
	err := s.client.Get(ctx, "feedbacks/", params.Values(), &page)
	return page, err
}

// Get returns one ticket.
func (s *FeedbackService) Get(ctx context.Context, id int64) (FeedbackTicket, error) {
	var f FeedbackTicket
	err := s.client.Get(ctx, fmt.Sprintf("feedbacks/%d/", id), nil, &f)
	return f, err
}

// Create submits a ticket.
func (s *FeedbackService) Create(ctx context.Context, req FeedbackRequest) (FeedbackTicket, error) {
	var f FeedbackTicket
	err := s.client.Post(ctx, "feedbacks/", req, &f)
	return f, err
}

// Delete removes a ticket. Owners and administrators only.
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("feedbacks/%d/", id))
}

// Mine returns the current user's own tickets.
func (s *FeedbackService) Mine(ctx context.Context) ([]FeedbackTicket, error) {
	var out []FeedbackTicket
	err := s.client.Get(ctx, "feedbacks/my_feedbacks/", nil, &out)
	return out, err
}

// Pending returns the unhandled tickets. Administrator only.
func (s *FeedbackService) Pending(ctx context.Context) ([]FeedbackTicket, error) {
	var out []FeedbackTicket
	err := s.client.Get(ctx, "feedbacks/pending/", nil, &out)
	return out, err
}

// Reply attaches the handler's response to a ticket and marks it
// resolved. Administrator only.
func (s *FeedbackService) Reply(ctx context.Context, id int64, reply string) (FeedbackTicket, error) {
	var f FeedbackTicket
	err := s.client.Post(ctx, fmt.Sprintf("feedbacks/%d/reply/", id), map[string]string{
		"reply": reply,
	}, &f)
	return f, err
}

// UpdateStatus moves a ticket through its handling states. Administrator only.
func (s *FeedbackService) UpdateStatus(ctx context.Context, id int64, status string) (FeedbackTicket, error) {
	var f FeedbackTicket
	err := s.client.Put(ctx, fmt.Sprintf("feedbacks/%d/update_status/", id), map[string]string{
		"status": status,
	}, &f)
	return f, err
}

// Stats returns ticket counts by state. Administrator only.
func (s *FeedbackService) Stats(ctx context.Context) (FeedbackStats, error) {
	var out FeedbackStats
	err := s.client.Get(ctx, "feedbacks/statistics/", nil, &out)
	return out, err
}
