package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/arenakit/arena/core/client"
)

// Target identifies the object a like, favorite, or comment attaches to.
type Target struct {
	// Type names the object kind, e.g. "event" or "announcement".
	Type string `json:"target_type"`
	// ID is the object's primary key.
	ID int64 `json:"target_id"`
}

func (t Target) values() url.Values {
	v := url.Values{}
	v.Set("target_type", t.Type)
	v.Set("target_id", strconv.FormatInt(t.ID, 10))
	return v
}

// Favorite is a bookmarked object in the current user's collection.
type Favorite struct {
	ID         int64     `json:"id"`
	TargetType string    `json:"target_type"`
	TargetID   int64     `json:"target_id"`
	Title      string    `json:"title"`
	Remarks    string    `json:"remarks"`
	CreatedAt  time.Time `json:"created_at"`
}

// Comment is a user comment on an event or announcement.
type Comment struct {
	ID         int64     `json:"id"`
	User       int64     `json:"user"`
	UserName   string    `json:"user_name"`
	Avatar     string    `json:"avatar"`
	TargetType string    `json:"target_type"`
	TargetID   int64     `json:"target_id"`
	Content    string    `json:"content"`
	Parent     *int64    `json:"parent"`
	ReplyTo    *int64    `json:"reply_to"`
	IsApproved bool      `json:"is_approved"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CommentRequest is the comment creation payload. Parent and ReplyTo
// thread the comment under an existing one when set.
type CommentRequest struct {
	Target
	Content string `json:"content"`
	Parent  *int64 `json:"parent,omitempty"`
	ReplyTo *int64 `json:"reply_to,omitempty"`
}

// InteractionsService covers likes, favorites, and comments. Likes and
// favorites key on a target object; comments have their own lifecycle
// including administrator moderation.
type InteractionsService struct {
	client *client.Client
}

// Like marks the target liked by the current user.
func (s *InteractionsService) Like(ctx context.Context, target Target) error {
	return s.client.Post(ctx, "interactions/likes/", target, nil)
}

// Unlike removes the current user's like from the target.
func (s *InteractionsService) Unlike(ctx context.Context, target Target) error {
	return s.client.Post(ctx, "interactions/likes/unlike/", target, nil)
}

// IsLiked reports whether the current user has liked the target.
func (s *InteractionsService) IsLiked(ctx context.Context, target Target) (bool, error) {
	var out struct {
		Liked bool `json:"liked"`
	}
	err := s.client.Get(ctx, "interactions/likes/check/", target.values(), &out)
	return out.Liked, err
}

// Favorite bookmarks the target for the current user.
func (s *InteractionsService) Favorite(ctx context.Context, target Target, remarks string) error {
	return s.client.Post(ctx, "interactions/favorites/", map[string]any{
		"target_type": target.Type,
		"target_id":   target.ID,
		"remarks":     remarks,
	}, nil)
}

// Unfavorite removes the target from the current user's bookmarks.
func (s *InteractionsService) Unfavorite(ctx context.Context, target Target) error {
	return s.client.Post(ctx, "interactions/favorites/unfavorite/", target, nil)
}

// IsFavorited reports whether the current user has bookmarked the target.
func (s *InteractionsService) IsFavorited(ctx context.Context, target Target) (bool, error) {
	var out struct {
		Favorited bool `json:"favorited"`
	}
	err := s.client.Get(ctx, "interactions/favorites/check/", target.values(), &out)
	return out.Favorited, err
}

// MyFavorites returns the current user's bookmark collection.
func (s *InteractionsService) MyFavorites(ctx context.Context, params ListParams) (Page[Favorite], error) {
	var page Page[Favorite]
	err := s.client.Get(ctx, "interactions/favorites/", params.Values(), &page)
	return page, err
}

// Comments returns a page of comments, filtered by target through
// ListParams.Filters.
func (s *InteractionsService) Comments(ctx context.Context, params ListParams) (Page[Comment], error) {
	var page Page[Comment]
	err := s.client.Get(ctx, "interactions/comments/", params.Values(), &page)
	return page, err
}

// CreateComment posts a comment on the target.
func (s *InteractionsService) CreateComment(ctx context.Context, req CommentRequest) (Comment, error) {
	var c Comment
	err := s.client.Post(ctx, "interactions/comments/", req, &c)
	return c, err
}

// DeleteComment removes a comment. Owners and administrators only.
func (s *InteractionsService) DeleteComment(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("interactions/comments/%d/", id))
}

// ApproveComment clears a comment for display. Administrator only.
func (s *InteractionsService) ApproveComment(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("interactions/comments/%d/approve/", id), nil, nil)
}

// RejectComment hides a comment. Administrator only.
func (s *InteractionsService) RejectComment(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("interactions/comments/%d/reject/", id), nil, nil)
}

// LikeComment increments a comment's like counter.
func (s *InteractionsService) LikeComment(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("interactions/comments/%d/like/", id), nil, nil)
}
