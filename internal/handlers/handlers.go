package handlers

import (
	"SkyVault/internal/config"
	"SkyVault/internal/middleware"
	"SkyVault/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	driveService *service.DriveService,
	shareService *service.ShareService,
	authService *service.AuthService,
	verifier middleware.TokenVerifier,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	fileHandler := NewFileHandler(driveService, logger, config)
	shareHandler := NewShareHandler(shareService, logger)
	authHandler := NewAuthHandler(authService, logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, message{Message: "SkyVault backend running"})
	})

	// Auth routes
	r.Post("/api/auth/signup", authHandler.SignUp)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(verifier))

		r.Post("/api/auth/reset-password", authHandler.ResetPassword)

		// File routes
		r.Route("/api/files", func(r chi.Router) {
			r.Get("/", fileHandler.List)
			r.Post("/upload", fileHandler.Upload)
			r.Post("/folder", fileHandler.CreateFolder)
			r.Put("/rename", fileHandler.Rename)
			r.Put("/move", fileHandler.Move)
			r.Get("/search", fileHandler.Search)
			r.Get("/folders", fileHandler.ListFolders)
			r.Delete("/folders/{id}", fileHandler.DeleteFolder)
			r.Delete("/trash/{id}", fileHandler.Trash)
			r.Put("/restore/{id}", fileHandler.Restore)
			r.Delete("/{id}", fileHandler.Delete)
		})

		// Share routes
		r.Post("/api/shares", shareHandler.Create)
		r.Get("/api/shares/{fileId}", shareHandler.List)
		r.Delete("/api/shares/{fileId}", shareHandler.Revoke)
	})

	return &Handler{Router: r}
}
