package repository

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/infra/sanity"

	"github.com/google/uuid"
)

type BookingRepository struct {
	client Mutator
}

func NewBookingRepository(client Mutator) *BookingRepository {
	return &BookingRepository{client: client}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (string, error) {
	id := uuid.NewString()
	doc := map[string]any{
		"_id":          id,
		"_type":        "booking",
		"user":         sanity.Ref(b.UserID()),
		"hotelRoom":    sanity.Ref(b.RoomID()),
		"checkinDate":  b.Stay().Checkin(),
		"checkoutDate": b.Stay().Checkout(),
		"numberOfDays": b.Stay().Nights(),
		"adults":       b.Adults(),
		"children":     b.Children(),
		"totalPrice":   b.TotalPrice(),
		"discount":     b.Discount(),
	}

	if _, err := r.client.Mutate(ctx, []sanity.Mutation{{Create: doc}}); err != nil {
		return "", infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
