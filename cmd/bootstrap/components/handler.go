package components

import (
	"hotelhub/internal/handler"
	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	booking *api.BookingHandler,
	checkout *api.CheckoutHandler,
	webhook *api.WebhookHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Room:     room,
		Booking:  booking,
		Checkout: checkout,
		Webhook:  webhook,
		User:     user,
	}
}
