package models

import "gorm.io/gorm"

// Order payment states written by the payment handlers.
const (
	PaymentMethodCOD      = "cod"
	PaymentStatusPending  = "pending"
	PaymentStatusCaptured = "captured"
)

// Order is created at checkout initiation and mutated only by the
// payment-method handlers; rows are never deleted.
type Order struct {
	gorm.Model
	UserID        uint    `gorm:"not null;index"            json:"user_id"`
	Total         float64 `gorm:"not null;default:0"        json:"total"`
	Status        string  `gorm:"size:50;default:pending"   json:"status"`
	PaymentMethod string  `gorm:"size:50"                   json:"payment_method"`
	PaymentStatus string  `gorm:"size:50"                   json:"payment_status"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
