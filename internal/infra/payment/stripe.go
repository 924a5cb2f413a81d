// Package payment is the anti-corruption layer over the hosted checkout
// provider. The domain only sees the CheckoutGateway and WebhookVerifier
// ports; Stripe types stay inside this package.
package payment

import (
	"context"
	"encoding/json"

	"hotelhub/internal/pkg/config"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateSession(ctx context.Context, spec commands.CheckoutSessionSpec) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(spec.SuccessURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(spec.Currency),
					UnitAmount: stripe.Int64(spec.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(spec.ProductName),
						Images: stripe.StringSlice(spec.Images),
					},
				},
			},
		},
	}
	params.Context = ctx
	for k, v := range spec.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session creation failed")
	}
	return &commands.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// StripeWebhookVerifier validates the provider signature over the raw webhook
// body using the shared webhook secret.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(cfg config.StripeConfig) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: cfg.WebhookSecret}
}

func (v *StripeWebhookVerifier) SecretConfigured() bool {
	return v.secret != ""
}

func (v *StripeWebhookVerifier) VerifyEvent(payload []byte, sigHeader string) (*commands.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, v.secret)
	if err != nil {
		return nil, err
	}

	var object struct {
		Metadata map[string]string `json:"metadata"`
	}
	if len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
			return nil, errs.Wrap(err, "malformed webhook event object")
		}
	}

	return &commands.PaymentEvent{Type: string(event.Type), Metadata: object.Metadata}, nil
}
