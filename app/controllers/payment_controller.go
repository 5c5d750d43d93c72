package controllers

import (
	"errors"
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/services"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/bind"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/payment"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
)

type initializeRequest struct {
	OrderID *uint    `json:"orderId"`
	Amount  *float64 `json:"amount"`
	Method  *string  `json:"method"`
}

type verifyUPIRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
}

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// Initialize starts a checkout payment. orderId, amount and method must all
// be present; the provider handle goes back to the client as-is.
func (c *PaymentController) Initialize(w http.ResponseWriter, r *http.Request) {
	var req initializeRequest
	if err := bind.JSONLoose(r, &req); err != nil ||
		req.OrderID == nil || req.Amount == nil || req.Method == nil {
		response.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	method, err := payment.ParseMethod(*req.Method)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment method")
		return
	}

	handle, err := c.service.Initialize(r.Context(), method, *req.OrderID, *req.Amount)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidMethod) {
			response.Error(w, http.StatusBadRequest, "Invalid payment method")
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(w, http.StatusOK, handle)
}

// VerifyUPI checks whether a UPI payment has been captured by the gateway.
// A non-captured payment and a gateway fault are both client-visible 400s,
// distinguished by body shape.
func (c *PaymentController) VerifyUPI(w http.ResponseWriter, r *http.Request) {
	var req verifyUPIRequest
	if errs, err := bind.JSON(r, &req); err != nil || errs != nil {
		response.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	captured, err := c.service.VerifyUPI(r.Context(), req.TransactionID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if !captured {
		response.JSON(w, http.StatusBadRequest, map[string]bool{"success": false})
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
