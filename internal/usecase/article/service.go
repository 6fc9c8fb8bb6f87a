package article

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/noticias-pt/news-api/domain"
)

// commentFanOutLimit bounds the concurrent comment lookups when joining
// comments onto a list of articles.
const commentFanOutLimit = 8

type Service struct {
	articleRepo domain.ArticleRepository
	commentRepo domain.CommentRepository
	now         func() time.Time
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, c domain.CommentRepository) *Service {
	return &Service{
		articleRepo: a,
		commentRepo: c,
		now:         time.Now,
	}
}

func (s *Service) timestamp() string {
	// RFC3339 on a UTC time renders as yyyy-MM-ddTHH:mm:ssZ
	return s.now().UTC().Format(time.RFC3339)
}

// fillComments joins each article's comments from the comment repository,
// one lookup per article, fanned out with a bounded errgroup.
func (s *Service) fillComments(ctx context.Context, data []domain.Article) ([]domain.Article, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(commentFanOutLimit)

	for i := range data {
		g.Go(func() error {
			comments, err := s.commentRepo.FetchByArticle(ctx, data[i].ID)
			if err != nil {
				return err
			}
			data[i].Comments = comments
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Service) Fetch(ctx context.Context) (res []domain.Article, err error) {
	res, err = s.articleRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.fillComments(ctx, res)
}

func (s *Service) GetByID(ctx context.Context, id string) (res domain.Article, err error) {
	res, err = s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	res.Comments = comments
	return res, nil
}

func (s *Service) Store(ctx context.Context, ar *domain.Article, authorEmail string) error {
	if ar.ID == "" {
		ar.ID = uuid.NewString()
	}
	// Author, publishedDate and likes are never trusted from the client.
	ar.Author = authorEmail
	ar.PublishedDate = s.timestamp()
	ar.Likes = 0
	ar.Comments = nil

	return s.articleRepo.Save(ctx, ar)
}

func (s *Service) Update(ctx context.Context, id string, ar *domain.Article) error {
	return s.articleRepo.Update(ctx, id, ar.Title, ar.Content)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.articleRepo.Delete(ctx, id)
}

func (s *Service) AddLike(ctx context.Context, id string) (domain.Article, error) {
	ar, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	// Read-modify-write without optimistic locking: two concurrent likes
	// on the same article can collapse into one. The store's atomic $inc
	// would close the gap.
	ar.Likes++
	if err := s.articleRepo.Save(ctx, &ar); err != nil {
		return domain.Article{}, err
	}
	return ar, nil
}

func (s *Service) AddComment(ctx context.Context, articleID string, c *domain.Comment, authorEmail string) error {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return err
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	// The path parameter wins over any client-supplied articleId.
	c.ArticleID = articleID
	c.Author = authorEmail
	c.Timestamp = s.timestamp()

	return s.commentRepo.Store(ctx, c)
}

func (s *Service) GetComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	return s.commentRepo.FetchByArticle(ctx, articleID)
}
