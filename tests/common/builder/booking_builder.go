//go:build unit

package builder

import (
	reqdto "hotelhub/internal/handler/dto/request"
	"hotelhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID       string
	RoomID       string
	RoomName     string
	RoomSlug     string
	CheckinDate  string
	CheckoutDate string
	NumberOfDays int
	Adults       int
	Children     int
	TotalPrice   float64
	Discount     float64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:       uuid.NewString(),
		RoomID:       uuid.NewString(),
		RoomName:     "Deluxe Sea View",
		RoomSlug:     "deluxe-sea-view",
		CheckinDate:  "2026-09-01",
		CheckoutDate: "2026-09-04",
		NumberOfDays: 3,
		Adults:       2,
		Children:     1,
		TotalPrice:   2700,
		Discount:     10,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkin, checkout string, nights int) *BookingBuilder {
	b.CheckinDate = checkin
	b.CheckoutDate = checkout
	b.NumberOfDays = nights
	return b
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CreateCheckoutSessionRequest {
	children := b.Children
	return reqdto.CreateCheckoutSessionRequest{
		HotelRoomSlug: b.RoomSlug,
		CheckinDate:   b.CheckinDate,
		CheckoutDate:  b.CheckoutDate,
		NumberOfDays:  b.NumberOfDays,
		Adults:        b.Adults,
		Children:      &children,
	}
}

func (b *BookingBuilder) BuildMetadata() map[string]string {
	return map[string]string{
		"user":         b.UserID,
		"hotelRoom":    b.RoomID,
		"checkinDate":  b.CheckinDate,
		"checkoutDate": b.CheckoutDate,
		"numberOfDays": "3",
		"adults":       "2",
		"children":     "1",
		"totalPrice":   "2700",
		"discount":     "10",
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID: uuid.NewString(),
		Room: queries.RoomSummary{
			ID:    b.RoomID,
			Name:  b.RoomName,
			Price: 1000,
			Slug:  b.RoomSlug,
		},
		CheckinDate:  b.CheckinDate,
		CheckoutDate: b.CheckoutDate,
		NumberOfDays: b.NumberOfDays,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalPrice:   b.TotalPrice,
		Discount:     b.Discount,
	}
}
