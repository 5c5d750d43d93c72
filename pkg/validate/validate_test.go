package validate_test

import (
	"testing"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/validate"
)

type checkoutInput struct {
	Email  string  `json:"email"  validate:"required,email"`
	Amount float64 `json:"amount" validate:"required,gte=0"`
	Method string  `json:"method" validate:"required,in=card,upi,cod"`
	Note   string  `json:"note"   validate:"nullable,max=200"`
	Qty    int     `json:"qty"    validate:"required,min=1,max=99"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Email:  "tony@stark.dev",
		Amount: 19.99,
		Method: "upi",
		Note:   "",
		Qty:    2,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(checkoutInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"email", "amount", "method", "qty"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["note"]; ok {
		t.Error("nullable note should not error when empty")
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Email: "not-an-email", Amount: 1, Method: "card", Qty: 1,
	})
	if _, ok := errs["email"]; !ok {
		t.Error("expected invalid email to fail")
	}
}

func TestInRuleKeepsFullParamList(t *testing.T) {
	for _, method := range []string{"card", "upi", "cod"} {
		errs := validate.Struct(checkoutInput{
			Email: "a@b.co", Amount: 1, Method: method, Qty: 1,
		})
		if _, ok := errs["method"]; ok {
			t.Errorf("method %q should be accepted", method)
		}
	}

	errs := validate.Struct(checkoutInput{
		Email: "a@b.co", Amount: 1, Method: "cheque", Qty: 1,
	})
	if _, ok := errs["method"]; !ok {
		t.Error("method outside the list should fail")
	}
}

func TestMinMaxOnNumbers(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Email: "a@b.co", Amount: 1, Method: "cod", Qty: 100,
	})
	if _, ok := errs["qty"]; !ok {
		t.Error("qty over max should fail")
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := validate.Struct(checkoutInput{
		Email: "nope", Amount: 1, Method: "card", Qty: 1,
	})
	if msg := errs["email"]; msg != "The email must be a valid email address." {
		t.Errorf("unexpected message: %q", msg)
	}
}
