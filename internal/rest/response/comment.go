package response

import "github.com/noticias-pt/news-api/domain"

type Comment struct {
	ID        string `json:"id"`
	ArticleID string `json:"articleId"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Content:   c.Content,
		Timestamp: c.Timestamp,
	}
}
