package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

const upiCurrency = "INR"

// UPIClient is the slice of the Razorpay API the instant-payment provider
// needs. Tests substitute a fake.
type UPIClient interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	FetchPayment(paymentID string) (map[string]interface{}, error)
}

type razorpayClient struct {
	c *razorpay.Client
}

// NewRazorpayClient builds a UPIClient against the live Razorpay API.
func NewRazorpayClient(keyID, keySecret string) UPIClient {
	return &razorpayClient{c: razorpay.NewClient(keyID, keySecret)}
}

func (rc *razorpayClient) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	order, err := rc.c.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	return order, nil
}

func (rc *razorpayClient) FetchPayment(paymentID string) (map[string]interface{}, error) {
	p, err := rc.c.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: fetch payment: %w", err)
	}
	return p, nil
}

// UPIProvider creates a capture-on-payment Razorpay order and returns the
// processor's order object verbatim for the storefront checkout widget.
type UPIProvider struct {
	client UPIClient
}

// NewUPIProvider wraps a UPIClient as a Provider and Verifier.
func NewUPIProvider(c UPIClient) *UPIProvider {
	return &UPIProvider{client: c}
}

func (p *UPIProvider) Initialize(_ context.Context, _ uint, amount float64) (Handle, error) {
	order, err := p.client.CreateOrder(map[string]interface{}{
		"amount":          MinorUnits(amount),
		"currency":        upiCurrency,
		"payment_capture": 1,
	})
	if err != nil {
		return nil, err
	}
	return Handle(order), nil
}

// Verify fetches the transaction and reports the processor status. Success
// means the status string equals StatusCaptured exactly; anything else is a
// failed payment.
func (p *UPIProvider) Verify(_ context.Context, transactionID string) (string, error) {
	pmt, err := p.client.FetchPayment(transactionID)
	if err != nil {
		return "", err
	}

	status, _ := pmt["status"].(string)
	return status, nil
}
