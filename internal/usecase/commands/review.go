package commands

import (
	"context"

	domreview "hotelhub/internal/domain/review"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/usecase/queries"
)

type UpsertReviewRequest struct {
	RoomID string
	Rating int
	Text   string
}

type UpsertReviewResult struct {
	ReviewID string
	Updated  bool
}

type ReviewCommands interface {
	// Upsert creates a review for (user, room) or updates the existing one.
	// This is a check-then-act sequence with no locking: two concurrent first
	// submissions for the same pair can both take the create path and leave a
	// duplicate. Accepted race; the content store offers no uniqueness
	// constraint to close it with.
	Upsert(ctx context.Context, req UpsertReviewRequest, userID string) (*UpsertReviewResult, error)
}

type reviewCommandsImpl struct {
	reviews   ReviewRepository
	readStore queries.ReviewReadStore
	clock     clock.Clock
}

func NewReviewCommands(reviews ReviewRepository, readStore queries.ReviewReadStore, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{reviews: reviews, readStore: readStore, clock: clk}
}

func (uc *reviewCommandsImpl) Upsert(ctx context.Context, req UpsertReviewRequest, userID string) (*UpsertReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	text, err := domreview.NewText(req.Text)
	if err != nil {
		return nil, err
	}

	existingID, err := uc.readStore.FindIDByUserAndRoom(ctx, userID, req.RoomID)
	if err != nil {
		return nil, err
	}

	if existingID != "" {
		if err := uc.reviews.UpdateContent(ctx, existingID, rating.Value(), text.String()); err != nil {
			return nil, err
		}
		return &UpsertReviewResult{ReviewID: existingID, Updated: true}, nil
	}

	rev, err := domreview.NewReview(userID, req.RoomID, rating, text, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	id, err := uc.reviews.Create(ctx, rev)
	if err != nil {
		return nil, err
	}
	return &UpsertReviewResult{ReviewID: id, Updated: false}, nil
}
