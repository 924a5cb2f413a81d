package bootstrap

import (
	"hotelhub/internal/infra/payment"
	"hotelhub/internal/pkg/config"
	"hotelhub/internal/usecase/commands"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.CheckoutGateway)),
		),
		fx.Annotate(
			NewStripeWebhookVerifier,
			fx.As(new(commands.WebhookVerifier)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}

func NewStripeWebhookVerifier(cfg config.Config) *payment.StripeWebhookVerifier {
	return payment.NewStripeWebhookVerifier(cfg.Stripe)
}
