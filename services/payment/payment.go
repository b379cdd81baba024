package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Service creates payment intents with the payment provider. Confirmation
// happens entirely client-side against the provider SDK; this service never
// observes the payment outcome.
type Service interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// StripeService is the Stripe-backed implementation. It relies on the global
// stripe.Key being set once at startup.
type StripeService struct{}

// CreateIntent creates a JPY payment intent for the given amount in minor
// currency units and returns the client secret verbatim.
func (StripeService) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyJPY)),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
