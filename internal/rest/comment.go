package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noticias-pt/news-api/domain"
	"github.com/noticias-pt/news-api/internal/rest/request"
	"github.com/noticias-pt/news-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.ArticleUsecase
}

func NewCommentHandler(svc domain.ArticleUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// CreateComment attaches a comment to an existing article. The article id
// from the path wins over anything in the body; author and timestamp are
// stamped server-side.
func (h *commentHandler) CreateComment(c *gin.Context) {
	articleID := c.Param("id")
	if articleID == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Missing article id"})
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	email, exists := c.Get("user_email")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	comment := req.ToDomain()
	ctx := c.Request.Context()
	if err := h.Service.AddComment(ctx, articleID, &comment, email.(string)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to add comment")})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// FetchCommentsByArticle lists the comments of an article, in store order.
// No existence check is performed on the article itself.
func (h *commentHandler) FetchCommentsByArticle(c *gin.Context) {
	articleID := c.Param("id")
	if articleID == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Missing article id"})
		return
	}

	ctx := c.Request.Context()
	comments, err := h.Service.GetComments(ctx, articleID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: safeMessage(err, "Failed to fetch comments")})
		return
	}

	res := make([]response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(&comments[i])
	}
	c.JSON(http.StatusOK, res)
}
