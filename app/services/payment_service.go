package services

import (
	"context"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/metrics"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/payment"
)

// PaymentService dispatches checkout initiation to the provider matching the
// requested method and verifies UPI captures.
type PaymentService struct {
	card *payment.CardProvider
	upi  *payment.UPIProvider
	cod  *payment.CODProvider
}

func NewPaymentService(card *payment.CardProvider, upi *payment.UPIProvider, cod *payment.CODProvider) *PaymentService {
	return &PaymentService{card: card, upi: upi, cod: cod}
}

// Initialize starts a payment of the given method for an order. The returned
// handle is provider-specific and goes back to the client verbatim.
func (s *PaymentService) Initialize(ctx context.Context, method payment.Method, orderID uint, amount float64) (payment.Handle, error) {
	var provider payment.Provider
	switch method {
	case payment.MethodCard:
		provider = s.card
	case payment.MethodUPI:
		provider = s.upi
	case payment.MethodCOD:
		provider = s.cod
	default:
		return nil, payment.ErrInvalidMethod
	}

	handle, err := provider.Initialize(ctx, orderID, amount)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.PaymentRequests.WithLabelValues(string(method), outcome).Inc()
	return handle, err
}

// VerifyUPI fetches the payment from the gateway and reports whether it has
// been captured. A reachable gateway with a non-captured payment is not an
// error, just a false result.
func (s *PaymentService) VerifyUPI(ctx context.Context, paymentID string) (bool, error) {
	status, err := s.upi.Verify(ctx, paymentID)
	if err != nil {
		metrics.PaymentRequests.WithLabelValues("upi_verify", "error").Inc()
		return false, err
	}
	captured := status == payment.StatusCaptured
	outcome := "ok"
	if !captured {
		outcome = "not_captured"
	}
	metrics.PaymentRequests.WithLabelValues("upi_verify", outcome).Inc()
	return captured, nil
}
