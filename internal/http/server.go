package httpapi

import (
	"net/http"

	"uihub-backend-go/internal/config"
	"uihub-backend-go/internal/hub"
	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	Hub       *hub.Hub
	Config    config.Config
	Tokens    services.TokenService
	StatusHub *services.StatusHub
}

func NewServer(h *hub.Hub, cfg config.Config, statusHub *services.StatusHub) *Server {
	tokens := services.TokenService{
		Secret: []byte(cfg.SessionSecret),
		Issuer: cfg.SessionIssuer,
	}
	return &Server{
		Hub:       h,
		Config:    cfg,
		Tokens:    tokens,
		StatusHub: statusHub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.Login)
		api.Get("/auth/session", s.Session)
		api.Post("/auth/logout", s.Logout)

		api.Group(func(priv chi.Router) {
			priv.Use(WithAuth(s.Tokens))

			priv.Route("/components", func(components chi.Router) {
				components.Get("/", s.ListComponents)
				components.Post("/", s.PublishComponent)
				components.Delete("/{componentId}", s.DeleteComponent)
				components.Get("/{componentId}/code/{lang}", s.ComponentCode)
			})

			priv.Route("/categories", func(categories chi.Router) {
				categories.Get("/", s.ListCategories)
				categories.Post("/", s.AddCategory)
			})

			priv.Route("/me/favorites", func(favorites chi.Router) {
				favorites.Get("/", s.ListFavorites)
				favorites.Put("/{componentId}", s.ToggleFavorite)
			})

			priv.Post("/media/inline", s.InlineMedia)

			priv.Route("/admin", func(admin chi.Router) {
				admin.Use(RequireRole(models.RoleAdmin))
				admin.Get("/users", s.ListUsers)
				admin.Put("/users/{userId}/role", s.SetUserRole)
				admin.Get("/status/history", s.StatusHistory)
			})
		})
	})

	r.Get("/ws/status", s.StatusSocket)
	return r
}

// actingSession resolves the live session record for the authenticated
// request. The user cache may be stale or empty in fallback mode, so the
// token claims stand in when the record is missing.
func (s *Server) actingSession(r *http.Request) models.UserSession {
	userID := CurrentUserID(r)
	for _, user := range s.Hub.Users() {
		if user.ID == userID {
			return user
		}
	}
	return models.UserSession{
		ID:       userID,
		Username: CurrentUsername(r),
		Role:     CurrentRole(r),
	}
}
