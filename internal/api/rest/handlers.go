package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ewint814/nba-game-tracker/internal/ingest/nbastats"
	"github.com/ewint814/nba-game-tracker/internal/scrape/bref"
	"github.com/ewint814/nba-game-tracker/internal/service"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	gameService  *service.GameService
	statsService *service.StatsService
	photoService *service.PhotoService
	scoreboard   *nbastats.Client
}

// NewHandler creates a new handler
func NewHandler(games *service.GameService, stats *service.StatsService, photos *service.PhotoService, scoreboard *nbastats.Client) *Handler {
	return &Handler{
		gameService:  games,
		statsService: stats,
		photoService: photos,
		scoreboard:   scoreboard,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "nba-game-tracker",
	})
}

// FindGames scrapes the schedule page for a date, optionally filtered to a
// team ("Boston" matches "Boston Celtics")
func (h *Handler) FindGames(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	team := r.URL.Query().Get("team")

	games, err := h.gameService.FindGamesByDate(r.Context(), date, team)
	if err != nil {
		var fetchErr *bref.FetchError
		if errors.As(err, &fetchErr) {
			respondError(w, http.StatusBadGateway, "Source site returned an error", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to find games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetScoreboard returns stats-API games for a date (arenas, game IDs)
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	games, err := h.scoreboard.Scoreboard(r.Context(), date)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch scoreboard", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// ListAttendedGames returns logged games, most recent first
func (h *Handler) ListAttendedGames(w http.ResponseWriter, r *http.Request) {
	limit := 50 // default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	games, err := h.gameService.ListAttendedGames(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// SaveAttendedGame scrapes a game's box score and logs it with seat details
func (h *Handler) SaveAttendedGame(w http.ResponseWriter, r *http.Request) {
	var req service.SaveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	game, err := h.gameService.SaveAttendedGame(r.Context(), req)
	if err != nil {
		var fetchErr *bref.FetchError
		if errors.As(err, &fetchErr) {
			respondError(w, http.StatusBadGateway, "Source site returned an error", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to save game", err)
		return
	}

	respondJSON(w, http.StatusCreated, game)
}

// GetGame returns a specific attended game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// DeleteGame removes an attended game
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), gameID); err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Game deleted",
		"game_id": gameID,
	})
}

// GetGameBoxScore returns the stored box score for an attended game
func (h *Handler) GetGameBoxScore(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	boxScore, err := h.gameService.GetBoxScore(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Box score not found", err)
		return
	}

	respondJSON(w, http.StatusOK, boxScore)
}

// ListPhotos returns all photos for a game
func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	photos, err := h.photoService.ListPhotos(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list photos", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"photos": photos,
		"count":  len(photos),
	})
}

// AddPhoto attaches a photo to a game
func (h *Handler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	gameID, err := gameIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game ID", err)
		return
	}

	var req struct {
		FilePath string `json:"file_path"`
		Caption  string `json:"caption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	photo, err := h.photoService.AddPhoto(r.Context(), gameID, req.FilePath, req.Caption)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to add photo", err)
		return
	}

	respondJSON(w, http.StatusCreated, photo)
}

// DeletePhoto removes a photo record
func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := strconv.Atoi(mux.Vars(r)["photoID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid photo ID", err)
		return
	}

	if err := h.photoService.DeletePhoto(r.Context(), photoID); err != nil {
		respondError(w, http.StatusNotFound, "Photo not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Photo deleted",
		"photo_id": photoID,
	})
}

// GetStatsSummary returns aggregate attendance statistics
func (h *Handler) GetStatsSummary(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")

	summary, err := h.statsService.GetSummary(r.Context(), team)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func parseDateParam(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}
	return time.Parse("2006-01-02", dateStr)
}

func gameIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["gameID"])
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
