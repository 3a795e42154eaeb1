package repositories

import (
	"fmt"
	"sync"
	"time"

	"smartstore/internal/models"

	"github.com/google/uuid"
)

// MockArticleRepository is an in-memory implementation of ArticleRepository.
type MockArticleRepository struct {
	articles map[string]models.Article
	mu       sync.RWMutex
}

// NewMockArticleRepository creates a new instance of MockArticleRepository.
func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[string]models.Article),
	}
}

// GetAll returns all articles.
func (r *MockArticleRepository) GetAll() ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articleList := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articleList = append(articleList, a)
	}
	return articleList, nil
}

// GetByID returns an article by its ID.
func (r *MockArticleRepository) GetByID(id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, fmt.Errorf("article with ID %s not found", id)
	}
	return &article, nil
}

// GetBySlug returns an article by its slug.
func (r *MockArticleRepository) GetBySlug(slug string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.articles {
		if a.Slug == slug {
			article := a
			return &article, nil
		}
	}
	return nil, fmt.Errorf("article with slug %s not found", slug)
}

// Create adds a new article.
func (r *MockArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	article.CreatedAt = time.Now()
	article.UpdatedAt = time.Now()
	r.articles[article.ID] = *article
	return nil
}

// Update modifies an existing article.
func (r *MockArticleRepository) Update(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.articles[article.ID]
	if !ok {
		return fmt.Errorf("article with ID %s not found for update", article.ID)
	}
	article.UpdatedAt = time.Now()
	r.articles[article.ID] = *article
	return nil
}

// Delete removes an article by its ID.
func (r *MockArticleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.articles[id]
	if !ok {
		return fmt.Errorf("article with ID %s not found for deletion", id)
	}
	delete(r.articles, id)
	return nil
}
