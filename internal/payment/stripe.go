// Package payment provides the payment collaborator implementations: a
// Stripe-backed processor for real deployments and an in-memory one for
// local development.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cinex/cinema-ticket-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type StripeProcessor struct {
	currency stripe.Currency
}

func NewStripeProcessor() *StripeProcessor {
	return &StripeProcessor{
		currency: stripe.CurrencyGBP,
	}
}

// MakePayment charges the account by creating a payment intent for the
// amount, given in whole currency units. Stripe invalid-request errors wrap
// domain.ErrInvalidInput; declines and transport errors are operational
// failures.
func (p *StripeProcessor) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if accountID <= 0 {
		return fmt.Errorf("account id must be positive, got %d: %w", accountID, domain.ErrInvalidInput)
	}

	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d: %w", amount, domain.ErrInvalidInput)
	}

	amountCents := decimal.NewFromInt(int64(amount)).Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context:        ctx,
			IdempotencyKey: stripe.String(uuid.New().String()),
		},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(p.currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("account_id", strconv.FormatInt(accountID, 10))

	_, err := paymentintent.New(params)
	if err != nil {
		return classifyStripeError(err)
	}

	return nil
}

func classifyStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeInvalidRequest {
		return fmt.Errorf("stripe rejected the request: %w", errors.Join(domain.ErrInvalidInput, err))
	}

	return fmt.Errorf("failed to create payment intent: %w", err)
}
