package payment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/payment"
)

func TestParseMethod(t *testing.T) {
	for _, valid := range []string{"card", "upi", "cod"} {
		if _, err := payment.ParseMethod(valid); err != nil {
			t.Errorf("ParseMethod(%q) = %v, want nil", valid, err)
		}
	}
	for _, invalid := range []string{"", "CARD", "cheque", "upi "} {
		if _, err := payment.ParseMethod(invalid); !errors.Is(err, payment.ErrInvalidMethod) {
			t.Errorf("ParseMethod(%q) = %v, want ErrInvalidMethod", invalid, err)
		}
	}
}

func TestMinorUnitsRounding(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{19.99, 1999},
		{0.1, 10},
		{10.555, 1056},
		// 29.99 is not representable exactly in binary; rounding keeps the
		// cent value stable.
		{29.99, 2999},
	}
	for _, c := range cases {
		if got := payment.MinorUnits(c.amount); got != c.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", c.amount, got, c.want)
		}
	}
}

type stubMarker struct {
	orderID uint
	err     error
}

func (s *stubMarker) MarkCashOnDelivery(_ context.Context, orderID uint) error {
	s.orderID = orderID
	return s.err
}

func TestCODProvider(t *testing.T) {
	marker := &stubMarker{}
	p := payment.NewCODProvider(marker)

	handle, err := p.Initialize(context.Background(), 42, 75)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if marker.orderID != 42 {
		t.Errorf("marked order %d, want 42", marker.orderID)
	}
	if success, _ := handle["success"].(bool); !success {
		t.Errorf("handle = %v, want success true", handle)
	}
}

func TestCODProviderPropagatesStoreError(t *testing.T) {
	marker := &stubMarker{err: errors.New("no such order")}
	p := payment.NewCODProvider(marker)

	if _, err := p.Initialize(context.Background(), 1, 10); err == nil {
		t.Fatal("expected error from marker")
	}
}
