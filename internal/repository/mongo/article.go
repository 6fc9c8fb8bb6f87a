package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/noticias-pt/news-api/domain"
	"github.com/noticias-pt/news-api/internal/repository/mongo/model"
)

const articleCollection = "articles"

type articleRepository struct {
	coll *mongo.Collection
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository creates the article persistence layer on top of the
// given database handle.
func NewArticleRepository(db *mongo.Database) *articleRepository {
	return &articleRepository{coll: db.Collection(articleCollection)}
}

func (r *articleRepository) GetAll(ctx context.Context) (res []domain.Article, err error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var articles []model.Article
	if err = cur.All(ctx, &articles); err != nil {
		return nil, err
	}

	res = make([]domain.Article, 0, len(articles))
	for i := range articles {
		res = append(res, articles[i].ToDomain())
	}
	return res, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (res domain.Article, err error) {
	var article model.Article
	err = r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return res, domain.ErrNotFound
		}
		return res, err
	}
	return article.ToDomain(), nil
}

func (r *articleRepository) Save(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, articleModel,
		options.Replace().SetUpsert(true))
	return err
}

func (r *articleRepository) Update(ctx context.Context, id, title, content string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"title":   title,
			"content": content,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
