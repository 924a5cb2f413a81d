package request

import (
	"hotelhub/internal/pkg/patch"
	"hotelhub/internal/usecase/commands"
)

type CreateCheckoutSessionRequest struct {
	HotelRoomSlug string `json:"hotelRoomSlug" binding:"required"`
	CheckinDate   string `json:"checkinDate" binding:"required"`
	CheckoutDate  string `json:"checkoutDate" binding:"required"`
	NumberOfDays  int    `json:"numberOfDays" binding:"required,min=1"`
	Adults        int    `json:"adults" binding:"required,min=1"`
	Children      *int   `json:"children" binding:"omitempty,min=0"`
}

func (r *CreateCheckoutSessionRequest) ToCommand(origin string) commands.CreateCheckoutSessionRequest {
	return commands.CreateCheckoutSessionRequest{
		RoomSlug:     r.HotelRoomSlug,
		CheckinDate:  r.CheckinDate,
		CheckoutDate: r.CheckoutDate,
		NumberOfDays: r.NumberOfDays,
		Adults:       r.Adults,
		Children:     patch.Coalesce(r.Children, 0),
		Origin:       origin,
	}
}
