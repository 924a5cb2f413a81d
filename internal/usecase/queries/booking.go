package queries

import (
	"context"
)

// RoomSummary is the subset of room fields joined into a booking row.
type RoomSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Slug  string  `json:"slug"`
}

type BookingView struct {
	ID           string      `json:"id"`
	Room         RoomSummary `json:"hotelRoom"`
	CheckinDate  string      `json:"checkinDate"`
	CheckoutDate string      `json:"checkoutDate"`
	NumberOfDays int         `json:"numberOfDays"`
	Adults       int         `json:"adults"`
	Children     int         `json:"children"`
	TotalPrice   float64     `json:"totalPrice"`
	Discount     float64     `json:"discount"`
}

type BookingReadStore interface {
	FindByUser(ctx context.Context, userID string) ([]*BookingView, error)
}

type BookingQueries interface {
	ListByUser(ctx context.Context, userID string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*BookingView, error) {
	return q.repo.FindByUser(ctx, userID)
}
