package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/noticias-pt/news-api/internal/identity"
	mongoRepo "github.com/noticias-pt/news-api/internal/repository/mongo"
	"github.com/noticias-pt/news-api/internal/rest"
	"github.com/noticias-pt/news-api/internal/rest/middleware"
	"github.com/noticias-pt/news-api/internal/usecase/article"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":8080"
	defaultAuthTimeout = 5
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on the environment")
	}
}

func main() {
	// prepare document store
	mongoURI := os.Getenv("MONGO_URI")
	mongoDB := os.Getenv("MONGO_DB")
	if mongoURI == "" || mongoDB == "" {
		log.Fatal("MONGO_URI and MONGO_DB must be set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatal("failed to create mongo client: ", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("got error when closing the store connection: ", err)
		}
	}()

	for i := range dbMaxRetry {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			break
		}
		log.Printf("failed to ping document store (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	if err != nil {
		log.Fatal("could not connect to document store after retries: ", err)
	}
	db := client.Database(mongoDB)

	// prepare identity provider client
	verifyURL := os.Getenv("AUTH_VERIFY_URL")
	if verifyURL == "" {
		log.Fatal("AUTH_VERIFY_URL must be set")
	}
	authTimeout, err := strconv.Atoi(os.Getenv("AUTH_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse auth timeout, using default")
		authTimeout = defaultAuthTimeout
	}
	verifier := identity.NewVerifier(verifyURL, time.Duration(authTimeout)*time.Second)

	// prepare gin
	rest.RegisterCustomValidators()
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Prepare Repository
	articleRepo := mongoRepo.NewArticleRepository(db)
	commentRepo := mongoRepo.NewCommentRepository(db)

	// Build service Layer
	articleSvc := article.NewService(articleRepo, commentRepo)
	articleHandler := rest.NewArticleHandler(articleSvc)
	commentHandler := rest.NewCommentHandler(articleSvc)

	authMiddleware := middleware.Auth(verifier)

	// Register routes
	route.GET("/articles", articleHandler.Fetch)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.GET("/articles/:id/comments", commentHandler.FetchCommentsByArticle)
	route.POST("/articles/:id/like", articleHandler.Like)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/articles", articleHandler.Store)
		authorized.PUT("/articles/:id", articleHandler.Update)
		authorized.DELETE("/articles/:id", articleHandler.Delete)
		authorized.POST("/articles/:id/comments", commentHandler.CreateComment)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
