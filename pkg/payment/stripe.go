package payment

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const cardCurrency = string(stripe.CurrencyUSD)

// CardClient is the slice of the Stripe API the card provider needs.
// Tests substitute a fake.
type CardClient interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

type stripeClient struct {
	api *client.API
}

// NewStripeClient builds a CardClient against the live Stripe API with a
// bounded per-call timeout.
func NewStripeClient(secretKey string) CardClient {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	})

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return &stripeClient{api: api}
}

func (c *stripeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// CardProvider creates a Stripe payment intent and hands the client secret
// back for client-side confirmation. No local order mutation happens here.
type CardProvider struct {
	client CardClient
}

// NewCardProvider wraps a CardClient as a Provider.
func NewCardProvider(c CardClient) *CardProvider {
	return &CardProvider{client: c}
}

func (p *CardProvider) Initialize(ctx context.Context, _ uint, amount float64) (Handle, error) {
	secret, err := p.client.CreateIntent(ctx, MinorUnits(amount), cardCurrency)
	if err != nil {
		return nil, err
	}
	return Handle{"clientSecret": secret}, nil
}
