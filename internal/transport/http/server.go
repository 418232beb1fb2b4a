package http

import (
	"fmt"
	"log"
	stdhttp "net/http"

	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/handler"
	"devconnector/internal/repository"
	"devconnector/internal/service"
)

func Run() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// 3. Wire repositories and services
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	tokens := service.NewTokenService(cfg)
	userService := service.NewUserService(userRepo, tokens)
	profileService := service.NewProfileService(profileRepo)
	postService := service.NewPostService(postRepo, userRepo)
	github := service.NewGithubClient(cfg)

	// 4. Wire handlers and routes
	router := NewRouter(RouterConfig{
		UserHandler:    handler.NewUserHandler(userService),
		AuthHandler:    handler.NewAuthHandler(userService),
		ProfileHandler: handler.NewProfileHandler(profileService, userService, github),
		PostHandler:    handler.NewPostHandler(postService),
		Tokens:         tokens,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
