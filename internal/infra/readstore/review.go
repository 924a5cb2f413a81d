package readstore

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/usecase/queries"
)

type ReviewReadStore struct {
	client Querier
}

func NewReviewReadStore(client Querier) *ReviewReadStore {
	return &ReviewReadStore{client: client}
}

func (r *ReviewReadStore) FindByRoomSlug(ctx context.Context, slug string) ([]*queries.ReviewView, error) {
	query := `*[_type == "review" && hotelRoom->slug.current == $slug] | order(_createdAt desc) {
		"id": _id,
		text,
		userRating,
		"userName": user->name,
		"createdAt": _createdAt
	}`

	var reviews []*queries.ReviewView
	if err := r.client.Fetch(ctx, query, map[string]any{"slug": slug}, &reviews); err != nil {
		return nil, infra.WrapRepoErr("failed to fetch reviews by room", err)
	}
	return reviews, nil
}

func (r *ReviewReadStore) FindIDByUserAndRoom(ctx context.Context, userID, roomID string) (string, error) {
	query := `*[_type == "review" && user._ref == $userId && hotelRoom._ref == $roomId][0]{"id": _id}`

	var row *struct {
		ID string `json:"id"`
	}
	params := map[string]any{"userId": userID, "roomId": roomID}
	if err := r.client.Fetch(ctx, query, params, &row); err != nil {
		return "", infra.WrapRepoErr("failed to check review existence", err)
	}
	if row == nil {
		return "", nil
	}
	return row.ID, nil
}
