package services

import (
	"smartstore/internal/models"
	"smartstore/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products, optionally filtered by category
// and/or the featured flag.
func (s *ProductService) GetAllProducts(category string, featuredOnly bool) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if category == "" && !featuredOnly {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if featuredOnly && !p.Featured {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetRelatedProducts fetches the candidate pool from the catalog and ranks
// it around the given product. Catalog fetch errors belong to this adapter;
// the ranking itself cannot fail.
func (s *ProductService) GetRelatedProducts(productID, category string, limit int) ([]models.Product, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return RelatedProducts(productID, category, limit, all), nil
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
