package domain

import (
	"context"
)

// Comment domain model. Comments are created once and never updated or
// deleted afterwards.
type Comment struct {
	ID        string `json:"id"`
	ArticleID string `json:"articleId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// CommentRepository defines the contract for comment document persistence.
type CommentRepository interface {
	// Store writes the comment document keyed by its ID.
	Store(ctx context.Context, c *Comment) error

	// FetchByArticle retrieves all comments whose articleId equals the
	// given ID, in store order.
	FetchByArticle(ctx context.Context, articleID string) ([]Comment, error)
}
