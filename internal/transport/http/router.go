package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"devconnector/internal/handler"
	"devconnector/internal/httputil"
	authmw "devconnector/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PostHandler    *handler.PostHandler
	Tokens         authmw.TokenVerifier
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes - no authentication required
		r.Post("/users", cfg.UserHandler.Register)
		r.Post("/auth", cfg.AuthHandler.Login)
		r.Get("/profile", cfg.ProfileHandler.GetAll)
		r.Get("/profile/user/{user_id}", cfg.ProfileHandler.GetByUserID)
		r.Get("/profile/github/{username}", cfg.ProfileHandler.GithubRepos)

		// Protected routes - require a valid x-auth-token
		r.Group(func(r chi.Router) {
			r.Use(authmw.AuthMiddleware(cfg.Tokens))

			r.Get("/auth", cfg.AuthHandler.Me)

			r.Get("/profile/me", cfg.ProfileHandler.Me)
			r.Post("/profile", cfg.ProfileHandler.Upsert)
			r.Delete("/profile", cfg.ProfileHandler.DeleteAccount)
			r.Put("/profile/experience", cfg.ProfileHandler.AddExperience)
			r.Delete("/profile/experience/{exp_id}", cfg.ProfileHandler.DeleteExperience)
			r.Put("/profile/education", cfg.ProfileHandler.AddEducation)
			r.Delete("/profile/education/{edu_id}", cfg.ProfileHandler.DeleteEducation)

			r.Post("/posts", cfg.PostHandler.Create)
			r.Get("/posts", cfg.PostHandler.GetAll)
			r.Get("/posts/{id}", cfg.PostHandler.GetByID)
			r.Delete("/posts/{id}", cfg.PostHandler.Delete)
			r.Put("/posts/like/{id}", cfg.PostHandler.Like)
			r.Put("/posts/unlike/{id}", cfg.PostHandler.Unlike)
			r.Post("/posts/comment/{id}", cfg.PostHandler.AddComment)
			r.Delete("/posts/comment/{id}/{comment_id}", cfg.PostHandler.DeleteComment)
		})
	})

	return r
}
