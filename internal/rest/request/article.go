package request

import "github.com/noticias-pt/news-api/domain"

type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title" binding:"required,notblank"`
	Content string `json:"content" binding:"required,notblank"`
}

// ToDomain: Request -> Domain. Author, publishedDate and likes are
// server-assigned and deliberately absent here.
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
	}
}
