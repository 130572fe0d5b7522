package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

const defaultHistoryLimit = 20

type gameManager interface {
	Click(ctx context.Context, cellID string) (*entity.BoardView, error)
	Restart(ctx context.Context) *entity.BoardView
	View() *entity.BoardView
	History(ctx context.Context, limit int64) ([]*entity.ValidationRecord, error)
}

type handlers struct {
	logger *slog.Logger
	game   gameManager
}

// NewRouter - routes of the page: board view, clicks, restart and history.
func NewRouter(logger *slog.Logger, game gameManager) http.Handler {
	that := &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.PingHandler)
	mux.HandleFunc("GET /api/board", that.BoardHandler)
	mux.HandleFunc("POST /api/click/{id}", that.ClickHandler)
	mux.HandleFunc("POST /api/restart", that.RestartHandler)
	mux.HandleFunc("GET /api/history", that.HistoryHandler)

	return mux
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) BoardHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.View())
}

func (that *handlers) ClickHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ClickHandler")

	view, err := that.game.Click(r.Context(), r.PathValue("id"))
	if errors.Is(err, apperror.ErrCellNotFound) {
		http.Error(w, "Cell not found", http.StatusNotFound)
		return
	}

	if err != nil {
		log.Error("failed to handle click", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) RestartHandler(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.Restart(r.Context()))
}

func (that *handlers) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "HistoryHandler")

	limit := int64(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := that.game.History(r.Context(), limit)
	if errors.Is(err, apperror.ErrHistoryDisabled) {
		http.Error(w, "History is disabled", http.StatusServiceUnavailable)
		return
	}

	if err != nil {
		log.Error("failed to get history", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
