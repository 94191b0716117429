package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/arenakit/arena/core/client"
)

// CarouselSlide is one entry of the home-page rotation.
type CarouselSlide struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	LinkURL     string     `json:"link_url"`
	Event       *int64     `json:"event"`
	Position    string     `json:"position"`
	Order       int        `json:"order"`
	IsActive    bool       `json:"is_active"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	ClickCount  int        `json:"click_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CarouselsService manages the home-page slide rotation.
type CarouselsService struct {
	client *client.Client
}

// List returns a page of slides. Administrator only.
func (s *CarouselsService) List(ctx context.Context, params ListParams) (Page[CarouselSlide], error) {
	var page Page[CarouselSlide]
	err := s.client.Get(ctx, "carousels/", params.Values(), &page)
	return page, err
}

// Get returns one slide.
func (s *CarouselsService) Get(ctx context.Context, id int64) (CarouselSlide, error) {
	var c CarouselSlide
	err := s.client.Get(ctx, fmt.Sprintf("carousels/%d/", id), nil, &c)
	return c, err
}

// Create adds a slide. Administrator only.
func (s *CarouselsService) Create(ctx context.Context, slide CarouselSlide) (CarouselSlide, error) {
	var out CarouselSlide
	err := s.client.Post(ctx, "carousels/", slide, &out)
	return out, err
}

// Update replaces a slide. Administrator only.
func (s *CarouselsService) Update(ctx context.Context, id int64, slide CarouselSlide) (CarouselSlide, error) {
	var out CarouselSlide
	err := s.client.Put(ctx, fmt.Sprintf("carousels/%d/", id), slide, &out)
	return out, err
}

// Delete removes a slide. Administrator only.
func (s *CarouselsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("carousels/%d/", id))
}

// Active returns the slides currently in rotation.
func (s *CarouselsService) Active(ctx context.Context) ([]CarouselSlide, error) {
	var out []CarouselSlide
	err := s.client.Get(ctx, "carousels/active/", nil, &out)
	return out, err
}

// ByPosition returns the active slides for one placement.
func (s *CarouselsService) ByPosition(ctx context.Context, position string) ([]CarouselSlide, error) {
	v := url.Values{}
	v.Set("position", position)
	var out []CarouselSlide
	err := s.client.Get(ctx, "carousels/by_position/", v, &out)
	return out, err
}

// Click records a slide click for engagement tracking.
func (s *CarouselsService) Click(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("carousels/%d/click/", id), nil, nil)
}

// Activate puts a slide into rotation. Administrator only.
func (s *CarouselsService) Activate(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("carousels/%d/activate/", id), nil, nil)
}

// Deactivate takes a slide out of rotation. Administrator only.
func (s *CarouselsService) Deactivate(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("carousels/%d/deactivate/", id), nil, nil)
}
