package models

import "time"

// Product categories known to the storefront.
const (
	CategoryRobotVacuum = "robot-vacuum"
	CategorySmartDevice = "smart-device"
)

// Product represents a product in the store catalog.
// Price is a decimal string ("1299.00"); arithmetic on it goes through
// shopspring/decimal, never float64.
type Product struct {
	ID             string            `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string            `json:"name" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Description    string            `json:"description" validate:"required"`
	Price          string            `json:"price" gorm:"type:varchar(32)" validate:"required"`
	Category       string            `json:"category" gorm:"type:varchar(100);index" validate:"required,oneof=robot-vacuum smart-device"`
	ImageURL       string            `json:"image_url" validate:"required"`
	Images         []string          `json:"images,omitempty" gorm:"serializer:json"`
	Specifications map[string]string `json:"specifications" gorm:"serializer:json"`
	Stock          int               `json:"stock" validate:"gte=0"`
	Featured       bool              `json:"featured"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
