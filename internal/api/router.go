package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chhavipande/museumyatra/internal/api/handler"
	"github.com/chhavipande/museumyatra/internal/api/middleware"
	"github.com/chhavipande/museumyatra/internal/services/accounts"
	"github.com/chhavipande/museumyatra/internal/services/catalog"
	"github.com/chhavipande/museumyatra/internal/services/journey"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AccountsService *accounts.Service
	JourneyService  *journey.Service
	CatalogService  *catalog.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountsHandler := handler.NewAccountsHandler(cfg.AccountsService)
	journeyHandler := handler.NewJourneyHandler(cfg.JourneyService)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Museum catalog routes
	api.HandleFunc("/museums", catalogHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/museums/{id}", catalogHandler.Get).Methods(http.MethodGet)

	// Auth routes
	api.HandleFunc("/auth/register", accountsHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", accountsHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", accountsHandler.Logout).Methods(http.MethodPost)

	// Current identity routes
	api.HandleFunc("/me", accountsHandler.GetMe).Methods(http.MethodGet)
	api.HandleFunc("/me", accountsHandler.DeleteMe).Methods(http.MethodDelete)
	api.HandleFunc("/me/reset", accountsHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/me/progress", journeyHandler.GetProgress).Methods(http.MethodGet)

	// Journey routes
	api.HandleFunc("/visits", journeyHandler.RecordVisit).Methods(http.MethodPost)
	api.HandleFunc("/wishlist/{id}/toggle", journeyHandler.ToggleWishlist).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{id}/toggle", journeyHandler.ToggleFavorite).Methods(http.MethodPost)
	api.HandleFunc("/badges", journeyHandler.GetBadges).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
