package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noticias-pt/news-api/domain"
	"github.com/noticias-pt/news-api/domain/mocks"
	"github.com/noticias-pt/news-api/internal/rest"
	"github.com/noticias-pt/news-api/internal/rest/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	rest.RegisterCustomValidators()
}

// newRouter wires the same route table as app/main.go.
func newRouter(svc domain.ArticleUsecase, verifier domain.TokenVerifier) *gin.Engine {
	articleHandler := rest.NewArticleHandler(svc)
	commentHandler := rest.NewCommentHandler(svc)

	route := gin.New()
	route.GET("/articles", articleHandler.Fetch)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.GET("/articles/:id/comments", commentHandler.FetchCommentsByArticle)
	route.POST("/articles/:id/like", articleHandler.Like)

	authorized := route.Group("/")
	authorized.Use(middleware.Auth(verifier))
	{
		authorized.POST("/articles", articleHandler.Store)
		authorized.PUT("/articles/:id", articleHandler.Update)
		authorized.DELETE("/articles/:id", articleHandler.Delete)
		authorized.POST("/articles/:id/comments", commentHandler.CreateComment)
	}
	return route
}

func perform(router *gin.Engine, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func okVerifier(email string) *mocks.TokenVerifier {
	verifier := new(mocks.TokenVerifier)
	verifier.On("Verify", mock.Anything, mock.AnythingOfType("string")).
		Return(domain.Identity{Email: email}, nil)
	return verifier
}

func TestFetchArticles_OK(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Fetch", mock.Anything).Return([]domain.Article{
		{ID: "a1", Title: "T", Content: "C", Likes: 1, Comments: []domain.Comment{{ID: "c1", ArticleID: "a1", Content: "hi"}}},
	}, nil)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodGet, "/articles", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "a1", body[0]["id"])
	comments, ok := body[0]["comments"].([]any)
	require.True(t, ok)
	assert.Len(t, comments, 1)
}

func TestFetchArticles_StoreFault(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Fetch", mock.Anything).Return(nil, assert.AnError)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodGet, "/articles", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The original cause must not leak into the body.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestGetArticleByID_NotFound(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("GetByID", mock.Anything, "deleted-id").Return(domain.Article{}, domain.ErrNotFound)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodGet, "/articles/deleted-id", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoreArticle_Unauthenticated(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	verifier := new(mocks.TokenVerifier)

	rec := perform(newRouter(svc, verifier), http.MethodPost, "/articles",
		`{"title":"T","content":"C"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestStoreArticle_Created(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Store", mock.Anything, mock.AnythingOfType("*domain.Article"), "a@x.com").
		Run(func(args mock.Arguments) {
			ar := args.Get(1).(*domain.Article)
			ar.ID = "3f1aa3e5-95a6-4af7-92e5-8e2fb4f4a8f8"
			ar.Author = "a@x.com"
			ar.PublishedDate = "2024-05-01T10:30:00Z"
			ar.Likes = 0
		}).Return(nil)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodPost, "/articles",
		`{"title":"T","content":"C"}`, "valid-token")

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "a@x.com", body["author"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, body["publishedDate"])
	assert.EqualValues(t, 0, body["likes"])
}

func TestStoreArticle_MissingTitle(t *testing.T) {
	svc := new(mocks.ArticleUsecase)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodPost, "/articles",
		`{"content":"C"}`, "valid-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreArticle_BlankTitle(t *testing.T) {
	svc := new(mocks.ArticleUsecase)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodPost, "/articles",
		`{"title":"   ","content":"C"}`, "valid-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateArticle_OK(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Update", mock.Anything, "a1", mock.AnythingOfType("*domain.Article")).Return(nil)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodPut, "/articles/a1",
		`{"title":"T2","content":"C2"}`, "valid-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "updated")
}

func TestUpdateArticle_NotFound(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Update", mock.Anything, "missing", mock.AnythingOfType("*domain.Article")).
		Return(domain.ErrNotFound)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodPut, "/articles/missing",
		`{"title":"T2","content":"C2"}`, "valid-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteArticle_OK(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Delete", mock.Anything, "a1").Return(nil)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodDelete, "/articles/a1", "", "valid-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteArticle_NotFound(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("Delete", mock.Anything, "gone").Return(domain.ErrNotFound)

	rec := perform(newRouter(svc, okVerifier("a@x.com")), http.MethodDelete, "/articles/gone", "", "valid-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteArticle_Unauthenticated(t *testing.T) {
	svc := new(mocks.ArticleUsecase)

	rec := perform(newRouter(svc, new(mocks.TokenVerifier)), http.MethodDelete, "/articles/a1", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLikeArticle_OK(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("AddLike", mock.Anything, "a1").
		Return(domain.Article{ID: "a1", Title: "T", Content: "C", Likes: 3}, nil)

	// Liking requires no authentication.
	rec := perform(newRouter(svc, new(mocks.TokenVerifier)), http.MethodPost, "/articles/a1/like", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["likes"])
}

func TestLikeArticle_NotFound(t *testing.T) {
	svc := new(mocks.ArticleUsecase)
	svc.On("AddLike", mock.Anything, "missing").Return(domain.Article{}, domain.ErrNotFound)

	rec := perform(newRouter(svc, new(mocks.TokenVerifier)), http.MethodPost, "/articles/missing/like", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
