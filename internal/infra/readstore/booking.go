package readstore

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/usecase/queries"
)

type BookingReadStore struct {
	client Querier
}

func NewBookingReadStore(client Querier) *BookingReadStore {
	return &BookingReadStore{client: client}
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID string) ([]*queries.BookingView, error) {
	query := `*[_type == "booking" && user._ref == $userId] | order(_createdAt desc) {
		"id": _id,
		checkinDate,
		checkoutDate,
		numberOfDays,
		adults,
		children,
		totalPrice,
		discount,
		"hotelRoom": hotelRoom->{"id": _id, name, price, "slug": slug.current}
	}`

	var bookings []*queries.BookingView
	if err := r.client.Fetch(ctx, query, map[string]any{"userId": userID}, &bookings); err != nil {
		return nil, infra.WrapRepoErr("failed to fetch bookings by user", err)
	}
	return bookings, nil
}
