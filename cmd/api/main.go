package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolli/backend/config"
	"github.com/portfolli/backend/internal/api"
	"github.com/portfolli/backend/internal/database"
	"github.com/portfolli/backend/internal/identity"
	"github.com/portfolli/backend/internal/middleware"
	"github.com/portfolli/backend/internal/router"
	"github.com/portfolli/backend/internal/server"
	"github.com/portfolli/backend/internal/service"
	"github.com/portfolli/backend/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}
	store := storage.NewS3Store(s3cfg)

	// Local JWT verification when the provider secret is shared with us,
	// otherwise one provider round trip per request.
	var verifier identity.Verifier
	if cfg.AuthJWTSecret != "" {
		verifier = identity.NewJWTVerifier(cfg.AuthJWTSecret)
	} else {
		verifier = identity.NewProviderVerifier(cfg.AuthProviderURL, cfg.AuthAPIKey)
	}

	var forumLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		forumLimiter = middleware.NewForumWriteRateLimiter(redisClient)
	} else {
		log.Printf("REDIS_URL not set, forum write rate limiting disabled")
	}

	postService := service.NewPostService(db)
	handlers := router.Handlers{
		Health:       api.NewHealthHandler(db),
		Profiles:     api.NewProfileHandler(service.NewProfileService(db)),
		Certificates: api.NewCertificateHandler(service.NewCertificateService(db, store)),
		Projects:     api.NewProjectHandler(service.NewProjectService(db)),
		Posts:        api.NewPostHandler(postService),
		Comments:     api.NewCommentHandler(service.NewCommentService(db)),
		Admin:        api.NewAdminHandler(service.NewAdminService(db), postService),
	}

	engine := router.Setup(handlers, verifier, service.NewRoleService(db), forumLimiter, cfg.ClientURL)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
