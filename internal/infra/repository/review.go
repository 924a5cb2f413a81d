package repository

import (
	"context"

	"hotelhub/internal/domain/review"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/sanity"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	client Mutator
}

func NewReviewRepository(client Mutator) *ReviewRepository {
	return &ReviewRepository{client: client}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (string, error) {
	id := uuid.NewString()
	doc := map[string]any{
		"_id":        id,
		"_type":      "review",
		"user":       sanity.Ref(rev.UserID()),
		"hotelRoom":  sanity.Ref(rev.RoomID()),
		"userRating": rev.Rating().Value(),
		"text":       rev.Text().String(),
	}

	if _, err := r.client.Mutate(ctx, []sanity.Mutation{{Create: doc}}); err != nil {
		return "", infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) UpdateContent(ctx context.Context, reviewID string, rating int, text string) error {
	patch := &sanity.Patch{
		ID: reviewID,
		Set: map[string]any{
			"text":       text,
			"userRating": rating,
		},
	}
	if _, err := r.client.Mutate(ctx, []sanity.Mutation{{Patch: patch}}); err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	return nil
}
