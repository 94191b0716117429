package api

import (
	"context"
	"fmt"
	"time"

	"github.com/arenakit/arena/core/client"
)

// Announcement is a platform or event notice.
type Announcement struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Summary          string     `json:"summary"`
	AnnouncementType string     `json:"announcement_type"`
	Priority         string     `json:"priority"`
	Event            *int64     `json:"event"`
	EventTitle       string     `json:"event_title"`
	Author           int64      `json:"author"`
	AuthorName       string     `json:"author_name"`
	CoverImage       string     `json:"cover_image"`
	IsPublished      bool       `json:"is_published"`
	IsPinned         bool       `json:"is_pinned"`
	ViewCount        int        `json:"view_count"`
	PublishTime      *time.Time `json:"publish_time"`
	ExpireTime       *time.Time `json:"expire_time"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// AnnouncementsService covers notice browsing and the administrator's
// publication controls.
type AnnouncementsService struct {
	client *client.Client
}

// List returns a page of announcements visible to the current user.
func (s *AnnouncementsService) List(ctx context.Context, params ListParams) (Page[Announcement], error) {
	var page Page[Announcement]
	err := s.client.Get(ctx, "announcements/", params.Values(), &page)
	return page, err
}

// Get returns one announcement. The server counts the view.
func (s *AnnouncementsService) Get(ctx context.Context, id int64) (Announcement, error) {
	var a Announcement
	err := s.client.Get(ctx, fmt.Sprintf("announcements/%d/", id), nil, &a)
	return a, err
}

// Create adds an announcement. Administrator only.
func (s *AnnouncementsService) Create(ctx context.Context, a Announcement) (Announcement, error) {
	var out Announcement
	err := s.client.Post(ctx, "announcements/", a, &out)
	return out, err
}

// Update replaces an announcement. Administrator only.
func (s *AnnouncementsService) Update(ctx context.Context, id int64, a Announcement) (Announcement, error) {
	var out Announcement
	err := s.client.Put(ctx, fmt.Sprintf("announcements/%d/", id), a, &out)
	return out, err
}

// Delete removes an announcement. Administrator only.
func (s *AnnouncementsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("announcements/%d/", id))
}

// Published returns the currently published, unexpired announcements.
func (s *AnnouncementsService) Published(ctx context.Context) ([]Announcement, error) {
	var out []Announcement
	err := s.client.Get(ctx, "announcements/published/", nil, &out)
	return out, err
}

// Pinned returns the announcements pinned to the top of the notice board.
func (s *AnnouncementsService) Pinned(ctx context.Context) ([]Announcement, error) {
	var out []Announcement
	err := s.client.Get(ctx, "announcements/pinned/", nil, &out)
	return out, err
}

// Publish makes an announcement visible. Administrator only.
func (s *AnnouncementsService) Publish(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("announcements/%d/publish/", id), nil, nil)
}

// Unpublish withdraws an announcement. Administrator only.
func (s *AnnouncementsService) Unpublish(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("announcements/%d/unpublish/", id), nil, nil)
}

// Pin moves an announcement to the top of the notice board. Administrator only.
func (s *AnnouncementsService) Pin(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("announcements/%d/pin/", id), nil, nil)
}

// Unpin releases a pinned announcement. Administrator only.
func (s *AnnouncementsService) Unpin(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("announcements/%d/unpin/", id), nil, nil)
}
