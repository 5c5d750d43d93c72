// Package payment models the checkout backends as interchangeable providers.
//
// Three providers ship: card (Stripe PaymentIntent), upi (Razorpay order on
// the instant-payment rail) and cod (no external call, the order row is
// marked directly). Each implements Provider; the UPI provider additionally
// implements Verifier for post-payment confirmation.
package payment

import (
	"context"
	"errors"
	"math"
)

// Method selects a payment backend at checkout-initialization time.
type Method string

const (
	MethodCard Method = "card"
	MethodUPI  Method = "upi"
	MethodCOD  Method = "cod"
)

// StatusCaptured is the only processor status treated as a successful
// instant payment.
const StatusCaptured = "captured"

// ErrInvalidMethod is returned for a method outside {card, upi, cod}.
var ErrInvalidMethod = errors.New("payment: invalid payment method")

// ParseMethod validates a client-supplied method string.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCard, MethodUPI, MethodCOD:
		return Method(s), nil
	default:
		return "", ErrInvalidMethod
	}
}

// Handle is the provider-issued payload returned verbatim to the storefront:
// the Stripe client secret, the full Razorpay order object, or the COD
// acknowledgement.
type Handle map[string]interface{}

// Provider initializes a payment for an order. Exactly one attempt is made
// per request; callers surface provider faults to the client without retry.
type Provider interface {
	Initialize(ctx context.Context, orderID uint, amount float64) (Handle, error)
}

// Verifier confirms a completed transaction with the processor.
type Verifier interface {
	Verify(ctx context.Context, transactionID string) (status string, err error)
}

// MinorUnits converts a decimal amount to the processor's integer minor
// units (cents, paise).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
