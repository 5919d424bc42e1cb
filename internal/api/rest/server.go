package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ewint814/nba-game-tracker/internal/ingest/nbastats"
	"github.com/ewint814/nba-game-tracker/internal/service"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, games *service.GameService, stats *service.StatsService, photos *service.PhotoService, scoreboard *nbastats.Client) *Server {
	handler := NewHandler(games, stats, photos, scoreboard)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Finding games to log
	api.HandleFunc("/games/find", handler.FindGames).Methods("GET")
	api.HandleFunc("/games/scoreboard", handler.GetScoreboard).Methods("GET")

	// Attended games
	api.HandleFunc("/games", handler.ListAttendedGames).Methods("GET")
	api.HandleFunc("/games", handler.SaveAttendedGame).Methods("POST")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.DeleteGame).Methods("DELETE")
	api.HandleFunc("/games/{gameID}/boxscore", handler.GetGameBoxScore).Methods("GET")

	// Photos
	api.HandleFunc("/games/{gameID}/photos", handler.ListPhotos).Methods("GET")
	api.HandleFunc("/games/{gameID}/photos", handler.AddPhoto).Methods("POST")
	api.HandleFunc("/photos/{photoID}", handler.DeletePhoto).Methods("DELETE")

	// Aggregate stats
	api.HandleFunc("/stats/summary", handler.GetStatsSummary).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
