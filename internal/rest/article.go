package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/noticias-pt/news-api/domain"
	"github.com/noticias-pt/news-api/internal/rest/request"
	"github.com/noticias-pt/news-api/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// Fetch will fetch all articles with their comments attached.
// Ordering is whatever the store returns.
func (a *ArticleHandler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()

	listAr, err := a.Service.Fetch(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to fetch articles")})
		return
	}

	res := make([]response.Article, len(listAr))
	for i := range listAr {
		res[i] = response.NewArticleFromDomain(&listAr[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Missing or malformed id"})
		return
	}
	ctx := c.Request.Context()

	art, err := a.Service.GetByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to fetch article")})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// Store will store the article by given request body
func (a *ArticleHandler) Store(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	article := req.ToDomain()
	ctx := c.Request.Context()
	if err := a.Service.Store(ctx, &article, email.(string)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to create article")})
		return
	}

	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update will modify title and content of the article by given param
func (a *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Missing or malformed id"})
		return
	}

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	article := req.ToDomain()
	ctx := c.Request.Context()
	if err := a.Service.Update(ctx, id, &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to update article")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article updated successfully"})
}

// Delete will delete the article by given param
func (a *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Missing or malformed id"})
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to delete article")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// Like increments the like counter of the article by exactly one and
// returns the updated article.
func (a *ArticleHandler) Like(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Missing article id"})
		return
	}

	art, err := a.Service.AddLike(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to like article")})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// safeMessage keeps domain error texts and hides everything else behind the
// given fallback. Infrastructure causes are logged, never sent to the client.
func safeMessage(err error, fallback string) string {
	switch err {
	case domain.ErrNotFound, domain.ErrConflict, domain.ErrBadParamInput, domain.ErrUnauthorized:
		return err.Error()
	default:
		return fallback
	}
}

// getStatusCode will get the code of the error from domain.ArticleUsecase
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
