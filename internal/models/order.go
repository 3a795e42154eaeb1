package models

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem represents a single line within an order. Price is the
// per-unit decimal string captured at checkout time.
type OrderItem struct {
	ProductID   string `json:"product_id" validate:"required"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Price       string `json:"price"`
}

// Order represents a customer order.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CustomerName    string      `json:"customer_name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	CustomerEmail   string      `json:"customer_email" gorm:"type:varchar(255)" validate:"required,email"`
	CustomerPhone   string      `json:"customer_phone" gorm:"type:varchar(50)" validate:"required"`
	ShippingAddress string      `json:"shipping_address" validate:"required"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items" gorm:"serializer:json" validate:"required,min=1,dive"`
	TotalAmount     string      `json:"total_amount" gorm:"type:varchar(32)"`
	Status          string      `json:"status" gorm:"type:varchar(50)"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
