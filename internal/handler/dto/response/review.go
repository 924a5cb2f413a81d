package response

import (
	"log/slog"
	"time"

	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"userRating"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpsertReviewResponse struct {
	ReviewID string `json:"reviewId"`
	Updated  bool   `json:"updated"`
}

func FromReviewViews(views []*queries.ReviewView) []ReviewResponse {
	resps := make([]ReviewResponse, 0, len(views))
	for _, v := range views {
		var resp ReviewResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Error("Failed to copy review view to response", "error", err)
		}
		resps = append(resps, resp)
	}
	return resps
}

func FromUpsertResult(r *commands.UpsertReviewResult) UpsertReviewResponse {
	return UpsertReviewResponse{
		ReviewID: r.ReviewID,
		Updated:  r.Updated,
	}
}
