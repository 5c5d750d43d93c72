package repositories

import (
	"context"
	"time"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/models"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/database"
)

// OrderRow is the admin listing shape: an order joined with its user's email.
type OrderRow struct {
	ID        uint      `json:"id"`
	UserEmail string    `json:"user_email"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderRepository handles order reads and the payment-state update.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// AllWithUserEmail returns all orders joined with the owning user's email,
// newest first.
func (r *OrderRepository) AllWithUserEmail(ctx context.Context) ([]OrderRow, error) {
	var rows []OrderRow
	err := database.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("orders.id, users.email AS user_email, orders.total, orders.status, orders.created_at").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Scan(&rows).Error
	return rows, wrap(ctx, "orders: all with user email", err)
}

// Create inserts a new order row at checkout initiation.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	err := database.DB.WithContext(ctx).Create(order).Error
	return wrap(ctx, "orders: create", err)
}

// ByID returns a single order or ErrNotFound.
func (r *OrderRepository) ByID(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := database.DB.WithContext(ctx).First(&order, id).Error
	return order, wrap(ctx, "orders: by id", err)
}

// MarkCashOnDelivery sets the COD payment fields in a single auto-committing
// update. Satisfies payment.OrderMarker.
func (r *OrderRepository) MarkCashOnDelivery(ctx context.Context, orderID uint) error {
	err := database.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_method": models.PaymentMethodCOD,
			"payment_status": models.PaymentStatusPending,
		}).Error
	return wrap(ctx, "orders: mark cod", err)
}
