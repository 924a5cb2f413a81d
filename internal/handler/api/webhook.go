package api

import (
	"log/slog"
	"net/http"

	"hotelhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	verifier        commands.WebhookVerifier
	bookingCommands commands.BookingCommands
}

func NewWebhookHandler(verifier commands.WebhookVerifier, bookingCommands commands.BookingCommands) *WebhookHandler {
	return &WebhookHandler{
		verifier:        verifier,
		bookingCommands: bookingCommands,
	}
}

// @Summary Payment provider webhook
// @Description Receive signed payment events and confirm bookings on completed checkouts
// @Tags webhook
// @Accept json
// @Produce plain
// @Param Stripe-Signature header string true "Event signature"
// @Success 200 {string} string "Booking successful"
// @Failure 500 {string} string "Webhook Error"
// @Router /webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusInternalServerError, "Webhook Error: %s", err.Error())
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	// Unverifiable deliveries are dropped without error so the provider
	// does not retry them forever.
	if sigHeader == "" || !h.verifier.SecretConfigured() {
		slog.Warn("Webhook received without verifiable signature, ignoring")
		c.Status(http.StatusOK)
		return
	}

	event, err := h.verifier.VerifyEvent(payload, sigHeader)
	if err != nil {
		slog.Error("Webhook signature verification failed", "error", err.Error())
		c.String(http.StatusInternalServerError, "Webhook Error: %s", err.Error())
		return
	}

	switch event.Type {
	case commands.EventCheckoutSessionCompleted:
		if _, err := h.bookingCommands.ConfirmFromCheckout(c.Request.Context(), event.Metadata); err != nil {
			slog.Error("Booking confirmation failed", "error", err.Error())
			c.String(http.StatusInternalServerError, "Webhook Error: %s", err.Error())
			return
		}
		c.String(http.StatusOK, "Booking successful")
	default:
		slog.Info("Unhandled webhook event", "type", event.Type)
		c.String(http.StatusOK, "Event received")
	}
}
