//go:build unit

package builder

import (
	"time"

	domreview "hotelhub/internal/domain/review"
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID    string
	UserName  string
	RoomID    string
	Rating    int
	Text      string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:    uuid.NewString(),
		UserName:  "Test Guest",
		RoomID:    uuid.NewString(),
		Rating:    5,
		Text:      "Excellent stay!",
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithUserID(userID string) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRoomID(roomID string) *ReviewBuilder {
	r.RoomID = roomID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithText(text string) *ReviewBuilder {
	r.Text = text
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	text, err := domreview.NewText(r.Text)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.UserID, r.RoomID, rating, text, r.CreatedAt)
}

func (r *ReviewBuilder) BuildUpsertRequestDTO() reqdto.UpsertReviewRequest {
	return reqdto.UpsertReviewRequest{
		RoomID:      r.RoomID,
		RatingText:  r.Text,
		RatingValue: r.Rating,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        uuid.NewString(),
		Text:      r.Text,
		Rating:    r.Rating,
		UserName:  r.UserName,
		CreatedAt: r.CreatedAt,
	}
}
