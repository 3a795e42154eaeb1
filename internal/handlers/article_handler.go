package handlers

import (
	"log"
	"strings"

	"smartstore/internal/models"
	"smartstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ArticleHandler handles HTTP requests for blog articles.
type ArticleHandler struct {
	service  *services.ArticleService
	validate *validator.Validate
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(service *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the article routes with the Fiber app. The
// public surface lists published articles by slug; the admin surface works
// on every article by id.
func (h *ArticleHandler) RegisterRoutes(router fiber.Router) {
	articleRoutes := router.Group("/articles")
	articleRoutes.Get("/", h.HandleGetPublishedArticles)
	articleRoutes.Get("/:slug", h.HandleGetArticleBySlug)

	adminRoutes := router.Group("/admin/articles")
	adminRoutes.Get("/", h.HandleGetAllArticles)
	adminRoutes.Post("/", h.HandleCreateArticle)
	adminRoutes.Put("/:id", h.HandleUpdateArticle)
	adminRoutes.Delete("/:id", h.HandleDeleteArticle)
}

// HandleGetPublishedArticles retrieves all published articles.
func (h *ArticleHandler) HandleGetPublishedArticles(c *fiber.Ctx) error {
	articles, err := h.service.GetPublishedArticles()
	if err != nil {
		log.Printf("Error getting published articles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve articles",
			"error":   err.Error(),
		})
	}
	return c.JSON(articles)
}

// HandleGetArticleBySlug retrieves a published article by its slug.
func (h *ArticleHandler) HandleGetArticleBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	article, err := h.service.GetPublishedArticleBySlug(slug)
	if err != nil {
		log.Printf("Error getting article by slug %s: %v", slug, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve article",
			"error":   err.Error(),
		})
	}
	return c.JSON(article)
}

// HandleGetAllArticles retrieves every article, drafts included.
func (h *ArticleHandler) HandleGetAllArticles(c *fiber.Ctx) error {
	articles, err := h.service.GetAllArticles()
	if err != nil {
		log.Printf("Error getting all articles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve articles",
			"error":   err.Error(),
		})
	}
	return c.JSON(articles)
}

// HandleCreateArticle creates a new article.
func (h *ArticleHandler) HandleCreateArticle(c *fiber.Ctx) error {
	var article models.Article
	if err := c.BodyParser(&article); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(&article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Article validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateArticle(&article); err != nil {
		log.Printf("Error creating article: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create article",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// HandleUpdateArticle updates an existing article.
func (h *ArticleHandler) HandleUpdateArticle(c *fiber.Ctx) error {
	articleID := c.Params("id")

	var article models.Article
	if err := c.BodyParser(&article); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	article.ID = articleID

	if err := h.validate.Struct(&article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Article validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.UpdateArticle(&article); err != nil {
		log.Printf("Error updating article %s: %v", articleID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update article",
			"error":   err.Error(),
		})
	}
	return c.JSON(article)
}

// HandleDeleteArticle deletes an article by its ID.
func (h *ArticleHandler) HandleDeleteArticle(c *fiber.Ctx) error {
	articleID := c.Params("id")
	if err := h.service.DeleteArticle(articleID); err != nil {
		log.Printf("Error deleting article %s: %v", articleID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete article",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Article deleted successfully",
	})
}
