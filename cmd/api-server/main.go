package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"libraryhub/database"
	"libraryhub/internal/config"
	"libraryhub/internal/http-api/handler"
	"libraryhub/internal/http-api/middleware"
	"libraryhub/internal/http-api/repository"
	"libraryhub/internal/http-api/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Connect to the database and run migrations
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	shelfRepo := repository.NewShelfRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg)
	bookSvc := service.NewBookService(bookRepo)
	movieSvc := service.NewMovieService(movieRepo)
	shelfSvc := service.NewShelfService(shelfRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	friendshipSvc := service.NewFriendshipService(friendshipRepo, userRepo)
	profileSvc := service.NewProfileService(userRepo, bookRepo, movieRepo, friendshipRepo)

	// Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.AuthMiddleware(authSvc)

	api := r.Group("/api")
	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"), authMW)

	authed := api.Group("")
	authed.Use(authMW)
	handler.NewBookHandler(bookSvc).RegisterRoutes(authed.Group("/books"))
	handler.NewMovieHandler(movieSvc).RegisterRoutes(authed.Group("/movies"))
	handler.NewShelfHandler(shelfSvc).RegisterRoutes(authed.Group("/shelves"))
	handler.NewCategoryHandler(categorySvc).RegisterRoutes(authed.Group("/categories"))
	handler.NewFriendHandler(friendshipSvc).RegisterRoutes(authed.Group("/friends"))
	handler.NewProfileHandler(profileSvc).RegisterRoutes(authed.Group("/profiles"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
