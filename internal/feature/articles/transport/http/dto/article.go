// Package dto defines data transfer objects for the articles feature's HTTP transport layer.
package dto

import (
	"time"

	"cms_backend/internal/feature/articles/domain/entity"
)

// ArticleReq is the request body for creating or updating an article.
// Published is a pointer so an absent field defaults to true.
type ArticleReq struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Excerpt   string `json:"excerpt" binding:"required"`
	Category  string `json:"category" binding:"required"`
	ImageURL  string `json:"image_url"`
	Published *bool  `json:"published"`
}

// Entity converts the request into an article entity.
func (r ArticleReq) Entity() *entity.Article {
	published := true
	if r.Published != nil {
		published = *r.Published
	}
	return &entity.Article{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		Category:  r.Category,
		ImageURL:  r.ImageURL,
		Published: published,
	}
}

// ArticleResp is the public representation of an article.
type ArticleResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url,omitempty"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewArticleResp converts an article entity to its public representation.
func NewArticleResp(a *entity.Article) ArticleResp {
	return ArticleResp{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Excerpt:   a.Excerpt,
		Category:  a.Category,
		ImageURL:  a.ImageURL,
		Published: a.Published,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
