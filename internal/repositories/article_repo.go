package repositories

import (
	"smartstore/internal/models"
)

// ArticleRepository defines the interface for blog article data access.
type ArticleRepository interface {
	GetAll() ([]models.Article, error)
	GetByID(id string) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id string) error
}
