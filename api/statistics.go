package api

import (
	"context"

	"github.com/arenakit/arena/core/client"
)

// Statistics holds the administrator dashboard counters.
type Statistics struct {
	TotalUsers         int `json:"total_users"`
	TotalEvents        int `json:"total_events"`
	TotalRegistrations int `json:"total_registrations"`
	PendingReviews     int `json:"pending_reviews"`
	PublishedEvents    int `json:"published_events"`
	OngoingEvents      int `json:"ongoing_events"`
}

// StatisticsService serves the administrator dashboard.
type StatisticsService struct {
	client *client.Client
}

// Get returns the platform-wide counters. Administrator only.
func (s *StatisticsService) Get(ctx context.Context) (Statistics, error) {
	var out Statistics
	err := s.client.Get(ctx, "statistics/", nil, &out)
	return out, err
}
