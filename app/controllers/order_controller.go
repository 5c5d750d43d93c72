package controllers

import (
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/repositories"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
)

type OrderController struct {
	orders *repositories.OrderRepository
}

func NewOrderController(orders *repositories.OrderRepository) *OrderController {
	return &OrderController{orders: orders}
}

// Index lists all orders for the admin console, newest first, with the
// owning user's email joined in.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.AllWithUserEmail(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, orders)
}
