package model

import (
	"github.com/noticias-pt/news-api/domain"
)

type Comment struct {
	ID        string `bson:"_id"`
	ArticleID string `bson:"articleId"`
	Author    string `bson:"author,omitempty"`
	Content   string `bson:"content"`
	Timestamp string `bson:"timestamp,omitempty"`
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		Author:    m.Author,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Content:   c.Content,
		Timestamp: c.Timestamp,
	}
}
