package request

import "github.com/noticias-pt/news-api/domain"

type Comment struct {
	ID      string `json:"id"`
	Content string `json:"content" binding:"required,notblank"`
}

// ToDomain: Request -> Domain. ArticleID, author and timestamp are stamped
// by the service; anything the client sends for them is discarded.
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:      r.ID,
		Content: r.Content,
	}
}
