package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

func connectMongo(cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

func setupRouter(cfg *config.Config, client *mongo.Client) *gin.Engine {
	tokens := services.NewTokenService(cfg.JWTSecret)

	userRepo := repository.GetUserRepo(client, cfg.Mongo.Database)
	noteRepo := repository.GetNoteRepo(client, cfg.Mongo.Database)

	authService := &usecase.AuthService{UserRepo: userRepo, Tokens: tokens}
	noteService := &usecase.NoteService{NoteRepo: noteRepo}

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	healthHandler := handler.NewHealthHandler(client)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20)) // 1 MiB
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	auth := router.Group("/auth")
	if cfg.Redis.URL != "" {
		redisClient, err := middleware.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			// Rate limiting is a shield, not a dependency.
			log.Printf("Redis unavailable, auth rate limiting disabled: %v", err)
		} else {
			auth.Use(middleware.RateLimitMiddleware(redisClient, cfg.Redis.AuthRateLimit, cfg.Redis.AuthRateWindow))
		}
	}
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	notes := router.Group("/notes")
	notes.Use(middleware.AuthMiddleware(tokens))
	notes.GET("", noteHandler.ListNotes)
	notes.POST("", noteHandler.CreateNote)
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client, err := connectMongo(cfg.Mongo)
	if err != nil {
		log.Fatalf("MongoDB startup failed: %v", err)
	}

	if err := repository.SetupIndexes(client.Database(cfg.Mongo.Database)); err != nil {
		log.Fatalf("Index setup failed: %v", err)
	}

	router := setupRouter(cfg, client)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	log.Println("Server shutdown complete")
}
