package queries

import (
	"context"
	"time"
)

type ReviewView struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"userRating"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewReadStore interface {
	FindByRoomSlug(ctx context.Context, slug string) ([]*ReviewView, error)
	// FindIDByUserAndRoom returns the existing review id for the (user, room)
	// pair, or "" when none exists. At most one match is expected by invariant.
	FindIDByUserAndRoom(ctx context.Context, userID, roomID string) (string, error)
}

type ReviewQueries interface {
	ListByRoomSlug(ctx context.Context, slug string) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByRoomSlug(ctx context.Context, slug string) ([]*ReviewView, error) {
	return q.repo.FindByRoomSlug(ctx, slug)
}
