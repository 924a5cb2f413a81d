package request

import (
	"hotelhub/internal/usecase/commands"
)

// UpsertReviewRequest keeps the field names of the dashboard's review form.
type UpsertReviewRequest struct {
	RoomID      string `json:"roomId" binding:"required"`
	RatingText  string `json:"ratingText" binding:"required,max=1000"`
	RatingValue int    `json:"ratingValue" binding:"required,min=1,max=5"`
}

func (r *UpsertReviewRequest) ToCommand() commands.UpsertReviewRequest {
	return commands.UpsertReviewRequest{
		RoomID: r.RoomID,
		Rating: r.RatingValue,
		Text:   r.RatingText,
	}
}
