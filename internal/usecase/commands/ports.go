package commands

import (
	"context"

	"hotelhub/internal/domain/booking"
	"hotelhub/internal/domain/review"
)

// Write-side ports over the content repository.

type BookingRepository interface {
	// Create writes a booking document and returns its id.
	Create(ctx context.Context, b *booking.Booking) (string, error)
}

type RoomRepository interface {
	// MarkBooked patches the room's booked flag to true.
	MarkBooked(ctx context.Context, roomID string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (string, error)
	// UpdateContent patches text and rating of an existing review in place.
	UpdateContent(ctx context.Context, reviewID string, rating int, text string) error
}

// Ports over the external checkout provider.

type CheckoutSessionSpec struct {
	AmountMinor int64 // charge amount in minor currency units
	Currency    string
	ProductName string
	Images      []string
	SuccessURL  string
	Metadata    map[string]string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, spec CheckoutSessionSpec) (*CheckoutSession, error)
}

// EventCheckoutSessionCompleted is the provider event type that triggers the
// booking-confirmation workflow.
const EventCheckoutSessionCompleted = "checkout.session.completed"

// PaymentEvent is a verified provider notification. Metadata values are all
// transmitted as text and coerced by the booking workflow.
type PaymentEvent struct {
	Type     string
	Metadata map[string]string
}

type WebhookVerifier interface {
	// VerifyEvent validates the provider signature over the raw request body
	// and returns the decoded event on success.
	VerifyEvent(payload []byte, sigHeader string) (*PaymentEvent, error)
	// SecretConfigured reports whether a webhook shared secret is present.
	SecretConfigured() bool
}
