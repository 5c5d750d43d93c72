package payment

import "context"

// OrderMarker persists the cash-on-delivery choice on an order row.
// Implemented by the order repository.
type OrderMarker interface {
	MarkCashOnDelivery(ctx context.Context, orderID uint) error
}

// CODProvider needs no external processor: a single update sets the order's
// payment_method to "cod" and payment_status to "pending".
type CODProvider struct {
	orders OrderMarker
}

// NewCODProvider wraps an OrderMarker as a Provider.
func NewCODProvider(orders OrderMarker) *CODProvider {
	return &CODProvider{orders: orders}
}

func (p *CODProvider) Initialize(ctx context.Context, orderID uint, _ float64) (Handle, error) {
	if err := p.orders.MarkCashOnDelivery(ctx, orderID); err != nil {
		return nil, err
	}
	return Handle{"success": true}, nil
}
