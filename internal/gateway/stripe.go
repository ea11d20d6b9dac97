package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// PaymentGateway requests charges from the payment provider. Amounts are
// minor currency units (cents).
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}

// StripeGateway backs PaymentGateway with the Stripe API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Stripe-backed gateway using the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent creates a card payment intent and returns its client secret.
// Attempted exactly once; failures surface to the caller unretried.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
