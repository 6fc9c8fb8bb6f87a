package response

import (
	"github.com/noticias-pt/news-api/domain"
)

type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author,omitempty"`
	PublishedDate string    `json:"publishedDate,omitempty"`
	Likes         int64     `json:"likes"`
	Comments      []Comment `json:"comments"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	comments := make([]Comment, 0, len(a.Comments))
	for i := range a.Comments {
		comments = append(comments, NewCommentFromDomain(&a.Comments[i]))
	}
	return Article{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		Author:        a.Author,
		PublishedDate: a.PublishedDate,
		Likes:         a.Likes,
		Comments:      comments,
	}
}
