package model

import (
	"github.com/noticias-pt/news-api/domain"
)

// Article is the stored shape of an article. Comments live in their own
// collection and are never embedded here.
type Article struct {
	ID            string `bson:"_id"`
	Title         string `bson:"title"`
	Content       string `bson:"content"`
	Author        string `bson:"author,omitempty"`
	PublishedDate string `bson:"publishedDate,omitempty"`
	Likes         int64  `bson:"likes"`
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:            m.ID,
		Title:         m.Title,
		Content:       m.Content,
		Author:        m.Author,
		PublishedDate: m.PublishedDate,
		Likes:         m.Likes,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:            a.ID,
		Title:         a.Title,
		Content:       a.Content,
		Author:        a.Author,
		PublishedDate: a.PublishedDate,
		Likes:         a.Likes,
	}
}
