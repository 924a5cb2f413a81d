package response

import (
	"log/slog"

	"hotelhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomSummaryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Slug  string  `json:"slug"`
}

type BookingResponse struct {
	ID           string              `json:"id"`
	Room         RoomSummaryResponse `json:"hotelRoom"`
	CheckinDate  string              `json:"checkinDate"`
	CheckoutDate string              `json:"checkoutDate"`
	NumberOfDays int                 `json:"numberOfDays"`
	Adults       int                 `json:"adults"`
	Children     int                 `json:"children"`
	TotalPrice   float64             `json:"totalPrice"`
	Discount     float64             `json:"discount"`
}

func FromBookingViews(views []*queries.BookingView) []BookingResponse {
	resps := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		var resp BookingResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Error("Failed to copy booking view to response", "error", err)
		}
		resps = append(resps, resp)
	}
	return resps
}
