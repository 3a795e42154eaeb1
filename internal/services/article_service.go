package services

import (
	"fmt"

	"smartstore/internal/models"
	"smartstore/internal/repositories"
)

// ArticleService handles business logic related to blog articles.
type ArticleService struct {
	repo repositories.ArticleRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repositories.ArticleRepository) *ArticleService {
	return &ArticleService{
		repo: repo,
	}
}

// GetPublishedArticles retrieves all published articles.
func (s *ArticleService) GetPublishedArticles() ([]models.Article, error) {
	articles, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	published := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Status == models.ArticleStatusPublished {
			published = append(published, a)
		}
	}
	return published, nil
}

// GetAllArticles retrieves every article regardless of status, for the
// back office.
func (s *ArticleService) GetAllArticles() ([]models.Article, error) {
	return s.repo.GetAll()
}

// GetArticleByID retrieves a single article by its ID.
func (s *ArticleService) GetArticleByID(id string) (*models.Article, error) {
	return s.repo.GetByID(id)
}

// GetPublishedArticleBySlug retrieves a published article by its slug.
// Drafts are not visible through this path.
func (s *ArticleService) GetPublishedArticleBySlug(slug string) (*models.Article, error) {
	article, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if article.Status != models.ArticleStatusPublished {
		return nil, fmt.Errorf("article with slug %s not found", slug)
	}
	return article, nil
}

// CreateArticle creates a new article.
func (s *ArticleService) CreateArticle(article *models.Article) error {
	if article.Status == "" {
		article.Status = models.ArticleStatusDraft
	}
	return s.repo.Create(article)
}

// UpdateArticle updates an existing article.
func (s *ArticleService) UpdateArticle(article *models.Article) error {
	return s.repo.Update(article)
}

// DeleteArticle deletes an article by its ID.
func (s *ArticleService) DeleteArticle(id string) error {
	return s.repo.Delete(id)
}
