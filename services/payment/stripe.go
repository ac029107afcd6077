package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
)

// CardProcessor charges a tokenized card and returns the processor's charge ID.
type CardProcessor interface {
	Charge(token string, amountCents int64, currency, description string) (string, error)
}

// StripeProcessor implements CardProcessor against the Stripe charge API. The
// global stripe.Key is set at startup from config.
type StripeProcessor struct{}

func (StripeProcessor) Charge(token string, amountCents int64, currency, description string) (string, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	if err := params.SetSource(token); err != nil {
		return "", fmt.Errorf("invalid card token: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe charge failed: %w", err)
	}
	if ch.Status != "succeeded" {
		return "", fmt.Errorf("stripe charge not settled: status %s", ch.Status)
	}
	return ch.ID, nil
}
