package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/noticias-pt/news-api/domain"
	"github.com/noticias-pt/news-api/internal/repository/mongo/model"
)

const commentCollection = "comments"

type commentRepository struct {
	coll *mongo.Collection
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *commentRepository {
	return &commentRepository{coll: db.Collection(commentCollection)}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(c)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, commentModel,
		options.Replace().SetUpsert(true))
	return err
}

func (r *commentRepository) FetchByArticle(ctx context.Context, articleID string) (res []domain.Comment, err error) {
	cur, err := r.coll.Find(ctx, bson.M{"articleId": articleID})
	if err != nil {
		return nil, err
	}

	var comments []model.Comment
	if err = cur.All(ctx, &comments); err != nil {
		return nil, err
	}

	res = make([]domain.Comment, 0, len(comments))
	for i := range comments {
		res = append(res, comments[i].ToDomain())
	}
	return res, nil
}
