package models

import "time"

// Article statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article represents a blog article. Content is stored and served as raw
// markdown; rendering is the front end's concern.
type Article struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title           string    `json:"title" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=3,max=255"`
	Content         string    `json:"content" validate:"required"`
	Excerpt         string    `json:"excerpt,omitempty"`
	FeaturedImage   string    `json:"featured_image,omitempty"`
	MetaTitle       string    `json:"meta_title,omitempty" gorm:"type:varchar(255)"`
	MetaDescription string    `json:"meta_description,omitempty"`
	MetaKeywords    string    `json:"meta_keywords,omitempty" gorm:"type:varchar(500)"`
	Status          string    `json:"status" gorm:"type:varchar(20)" validate:"omitempty,oneof=draft published"`
	AuthorID        string    `json:"author_id,omitempty" gorm:"type:varchar(36)"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
