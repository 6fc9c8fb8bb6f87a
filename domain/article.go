package domain

import (
	"context"
)

// Article is representing the Article data struct.
// Comments are joined from the comments collection at read time and are
// never persisted inside the article document itself.
type Article struct {
	ID            string    // UUID, generated server-side when absent
	Title         string    // Article title
	Content       string    // Article body content
	Author        string    // Author email, stamped from the resolved identity
	PublishedDate string    // ISO-8601 UTC timestamp, server-assigned on creation
	Likes         int64     // Number of likes, never negative
	Comments      []Comment // Transient join, read paths only
}

// ArticleRepository defines the contract for article document persistence.
type ArticleRepository interface {
	// GetAll retrieves every article document. Ordering is whatever the
	// store returns; no sort is applied.
	GetAll(ctx context.Context) ([]Article, error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id string) (Article, error)

	// Save writes the full article document keyed by its ID, creating it
	// when absent.
	Save(ctx context.Context, a *Article) error

	// Update modifies only the title and content fields of an existing
	// article. Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, id, title, content string) error

	// Delete removes an article by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id string) error
}

// ArticleUsecase defines the business logic contract for article operations.
type ArticleUsecase interface {
	// Fetch retrieves all articles with their comments attached.
	Fetch(ctx context.Context) ([]Article, error)

	// GetByID retrieves one article with its comments attached.
	GetByID(ctx context.Context, id string) (Article, error)

	// Store creates an article, stamping author and publishedDate
	// server-side. Client-supplied author, publishedDate, likes and
	// comments are ignored.
	Store(ctx context.Context, ar *Article, authorEmail string) error

	// Update modifies title and content of an existing article.
	Update(ctx context.Context, id string, ar *Article) error

	// Delete removes an article. Returns ErrNotFound when already gone.
	Delete(ctx context.Context, id string) error

	// AddLike increments the like counter by one and returns the updated
	// article.
	AddLike(ctx context.Context, id string) (Article, error)

	// AddComment attaches a comment to an existing article, stamping
	// articleId, author and timestamp server-side.
	AddComment(ctx context.Context, articleID string, c *Comment, authorEmail string) error

	// GetComments retrieves the comments of an article. No existence
	// check is performed on the article itself.
	GetComments(ctx context.Context, articleID string) ([]Comment, error)
}
