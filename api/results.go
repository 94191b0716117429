package api

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arenakit/arena/core/client"
)

// Result is a recorded score for one participant in one event round.
type Result struct {
	ID             int64     `json:"id"`
	Event          int64     `json:"event"`
	EventTitle     string    `json:"event_title"`
	Registration   int64     `json:"registration"`
	User           int64     `json:"user"`
	UserName       string    `json:"user_name"`
	RoundType      string    `json:"round_type"`
	Score          string    `json:"score"`
	Rank           int       `json:"rank"`
	Award          string    `json:"award"`
	ScoreUnit      string    `json:"score_unit"`
	Remarks        string    `json:"remarks"`
	CertificateURL string    `json:"certificate_url"`
	IsPublished    bool      `json:"is_published"`
	RecordedBy     *int64    `json:"recorded_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ResultRequest is the score-entry payload used by referees and
// administrators.
type ResultRequest struct {
	Event        int64  `json:"event"`
	Registration int64  `json:"registration"`
	RoundType    string `json:"round_type"`
	Score        string `json:"score"`
	Rank         int    `json:"rank,omitempty"`
	Award        string `json:"award,omitempty"`
	ScoreUnit    string `json:"score_unit,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
}

// LeaderboardEntry is one row of an event's ranking.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserName string `json:"user_name"`
	Score    string `json:"score"`
	Award    string `json:"award"`
}

// ImportOutcome summarizes a result-sheet import.
type ImportOutcome struct {
	Message string   `json:"message"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// ResultsService covers score recording, publication, and the
// participant's own result views.
type ResultsService struct {
	client *client.Client
}

// List returns a page of results visible to the current user.
func (s *ResultsService) List(ctx context.Context, params ListParams) (Page[Result], error) {
	var page Page[Result]
	err := s.client.Get(ctx, "results/", params.Values(), &page)
	return page, err
}

// Get returns one result.
func (s *ResultsService) Get(ctx context.Context, id int64) (Result, error) {
	var r Result
	err := s.client.Get(ctx, fmt.Sprintf("results/%d/", id), nil, &r)
	return r, err
}

// Create records a score. Referee or administrator only.
func (s *ResultsService) Create(ctx context.Context, req ResultRequest) (Result, error) {
	var r Result
	err := s.client.Post(ctx, "results/", req, &r)
	return r, err
}

// Update replaces a recorded score. Referee or administrator only.
func (s *ResultsService) Update(ctx context.Context, id int64, req ResultRequest) (Result, error) {
	var r Result
	err := s.client.Put(ctx, fmt.Sprintf("results/%d/", id), req, &r)
	return r, err
}

// Delete removes a recorded score. Referee or administrator only.
func (s *ResultsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("results/%d/", id))
}

// Publish makes a result visible to its participant.
func (s *ResultsService) Publish(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("results/%d/publish/", id), nil, nil)
}

// Unpublish hides a result from its participant again.
func (s *ResultsService) Unpublish(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("results/%d/unpublish/", id), nil, nil)
}

// Mine returns the current user's published results.
func (s *ResultsService) Mine(ctx context.Context) ([]Result, error) {
	var out []Result
	err := s.client.Get(ctx, "results/my_results/", nil, &out)
	return out, err
}

// Leaderboard returns the ranking of one event.
func (s *ResultsService) Leaderboard(ctx context.Context, eventID int64) ([]LeaderboardEntry, error) {
	var out []LeaderboardEntry
	err := s.client.Get(ctx, "results/leaderboard/", urlValues("event", eventID), &out)
	return out, err
}

// PendingCount returns the number of unpublished results awaiting review.
func (s *ResultsService) PendingCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := s.client.Get(ctx, "results/pending_results_count/", nil, &out)
	return out.Count, err
}

// Export downloads the result sheet, filtered by the same parameters as
// List. The payload is a spreadsheet, returned undecoded.
func (s *ResultsService) Export(ctx context.Context, params ListParams) ([]byte, error) {
	var out []byte
	err := s.client.Get(ctx, "results/export/", params.Values(), &out)
	return out, err
}

// BulkPublish publishes several results at once. Administrator only.
func (s *ResultsService) BulkPublish(ctx context.Context, ids []int64) (BulkOutcome, error) {
	var out BulkOutcome
	err := s.client.Post(ctx, "results/bulk_publish/", map[string]any{"ids": ids}, &out)
	return out, err
}

// BulkDelete removes several results at once. Administrator only.
func (s *ResultsService) BulkDelete(ctx context.Context, ids []int64) (BulkOutcome, error) {
	var out BulkOutcome
	err := s.client.Post(ctx, "results/bulk_delete/", map[string]any{"ids": ids}, &out)
	return out, err
}

// Import uploads a result sheet for one event and returns the per-row
// outcome. The body must be the raw spreadsheet bytes.
func (s *ResultsService) Import(ctx context.Context, filename string, body io.Reader) (ImportOutcome, error) {
	form, contentType, err := encodeFileForm(filename, body)
	if err != nil {
		return ImportOutcome{}, err
	}
	var out ImportOutcome
	err = s.client.PostMultipart(ctx, "results/import/", form, contentType, &out)
	return out, err
}
