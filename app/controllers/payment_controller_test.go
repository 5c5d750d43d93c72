package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
)

func TestPaymentInitializeMissingFields(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/payment/initialize", map[string]interface{}{
		"orderId": 1,
		"amount":  10.0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestPaymentInitializeInvalidMethod(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/payment/initialize", map[string]interface{}{
		"orderId": 1,
		"amount":  10.0,
		"method":  "barter",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Invalid payment method", body["error"])
}

func TestPaymentInitializeCard(t *testing.T) {
	testCard.secret = "pi_card_secret"

	rec := do(t, http.MethodPost, "/api/payment/initialize", map[string]interface{}{
		"orderId": 1,
		"amount":  19.99,
		"method":  "card",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "pi_card_secret", body["clientSecret"])
	// Amounts go to the processor in minor units.
	assert.Equal(t, int64(1999), testCard.lastAmount)
	assert.Equal(t, "usd", testCard.lastCurrency)
}

func TestPaymentInitializeUPIReturnsOrderVerbatim(t *testing.T) {
	testUPI.order = map[string]interface{}{
		"id":       "order_upi_1",
		"amount":   50000,
		"currency": "INR",
		"status":   "created",
	}

	rec := do(t, http.MethodPost, "/api/payment/initialize", map[string]interface{}{
		"orderId": 2,
		"amount":  500.0,
		"method":  "upi",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decode(t, rec, &body)
	assert.Equal(t, "order_upi_1", body["id"])
	assert.Equal(t, "created", body["status"])

	// The gateway request carries minor units, INR and auto-capture.
	assert.Equal(t, int64(50000), testUPI.lastOrder["amount"])
	assert.Equal(t, "INR", testUPI.lastOrder["currency"])
	assert.Equal(t, 1, testUPI.lastOrder["payment_capture"])
}

func TestPaymentInitializeCOD(t *testing.T) {
	user := models.User{Email: "cod@stark.dev", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&user).Error)
	order := models.Order{UserID: user.ID, Total: 75, Status: "pending"}
	require.NoError(t, database.DB.Create(&order).Error)

	rec := do(t, http.MethodPost, "/api/payment/initialize", map[string]interface{}{
		"orderId": order.ID,
		"amount":  75.0,
		"method":  "cod",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	decode(t, rec, &body)
	assert.True(t, body["success"])

	var updated models.Order
	require.NoError(t, database.DB.First(&updated, order.ID).Error)
	assert.Equal(t, "cod", updated.PaymentMethod)
	assert.Equal(t, "pending", updated.PaymentStatus)
}

func TestVerifyUPICaptured(t *testing.T) {
	testUPI.payment = map[string]interface{}{"status": "captured"}
	testUPI.fetchErr = nil

	rec := do(t, http.MethodPost, "/api/payment/verify-upi", map[string]string{
		"transactionId": "pay_123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	decode(t, rec, &body)
	assert.True(t, body["success"])
}

func TestVerifyUPINotCaptured(t *testing.T) {
	testUPI.payment = map[string]interface{}{"status": "authorized"}
	testUPI.fetchErr = nil

	rec := do(t, http.MethodPost, "/api/payment/verify-upi", map[string]string{
		"transactionId": "pay_456",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]bool
	decode(t, rec, &body)
	assert.False(t, body["success"])
}

func TestVerifyUPIGatewayFault(t *testing.T) {
	testUPI.payment = nil
	testUPI.fetchErr = assert.AnError

	rec := do(t, http.MethodPost, "/api/payment/verify-upi", map[string]string{
		"transactionId": "pay_789",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.NotEmpty(t, body["error"])
}

func TestVerifyUPIMissingTransactionID(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/payment/verify-upi", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
