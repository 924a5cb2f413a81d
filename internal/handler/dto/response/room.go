package response

import (
	"log/slog"

	"hotelhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomImageResponse struct {
	URL string `json:"url"`
}

type AmenityResponse struct {
	Amenity string `json:"amenity"`
	Icon    string `json:"icon"`
}

type RoomResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Description      string              `json:"description"`
	Type             string              `json:"type"`
	Price            float64             `json:"price"`
	Discount         float64             `json:"discount"`
	NumberOfBeds     int                 `json:"numberOfBeds"`
	SpecialNote      string              `json:"specialNote"`
	CoverImage       string              `json:"coverImage"`
	Images           []RoomImageResponse `json:"images"`
	OfferedAmenities []AmenityResponse   `json:"offeredAmenities"`
	IsBooked         bool                `json:"isBooked"`
	IsFeatured       bool                `json:"isFeatured"`
}

func FromRoomView(v *queries.RoomView) RoomResponse {
	var resp RoomResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("Failed to copy room view to response", "error", err)
	}
	return resp
}

func FromRoomViews(views []*queries.RoomView) []RoomResponse {
	resps := make([]RoomResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromRoomView(v))
	}
	return resps
}
