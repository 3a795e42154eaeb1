package repositories

import (
	"fmt"

	"smartstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArticleRepository is a GORM implementation of ArticleRepository.
type GORMArticleRepository struct {
	db *gorm.DB
}

// NewGORMArticleRepository creates a new instance of GORMArticleRepository.
func NewGORMArticleRepository(db *gorm.DB) *GORMArticleRepository {
	return &GORMArticleRepository{
		db: db,
	}
}

// GetAll retrieves all articles, newest first.
func (r *GORMArticleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all articles: %w", err)
	}
	return articles, nil
}

// GetByID retrieves a single article by its ID.
func (r *GORMArticleRepository) GetByID(id string) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get article by ID %s: %w", id, err)
	}
	return &article, nil
}

// GetBySlug retrieves a single article by its slug.
func (r *GORMArticleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("article with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to get article by slug %s: %w", slug, err)
	}
	return &article, nil
}

// Create creates a new article.
func (r *GORMArticleRepository) Create(article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.Status == "" {
		article.Status = models.ArticleStatusDraft
	}
	if err := r.db.Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// Update updates an existing article.
func (r *GORMArticleRepository) Update(article *models.Article) error {
	res := r.db.Save(article)
	if res.Error != nil {
		return fmt.Errorf("failed to update article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("article with ID %s not found for update", article.ID)
	}
	return nil
}

// Delete deletes an article by its ID.
func (r *GORMArticleRepository) Delete(id string) error {
	res := r.db.Delete(&models.Article{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("article with ID %s not found for deletion", id)
	}
	return nil
}
