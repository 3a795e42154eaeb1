package repositories

import (
	"smartstore/internal/models"
)

// ProductRepository defines the interface for catalog data access. It doubles
// as the candidate pool source for related-products ranking.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
