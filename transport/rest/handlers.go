package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
	"github.com/rocketscienceinc/tictactoe-search/internal/usecase"
)

type matchUseCase interface {
	SuggestMove(ctx context.Context, req usecase.MoveRequest) (entity.Cell, error)
	PlayMatch(ctx context.Context, xLevel, oLevel string) (*entity.Match, error)
	GetMatch(ctx context.Context, id string) (*entity.Match, error)
	DeleteMatch(ctx context.Context, id string) error
	RunTournament(ctx context.Context, n int, xLevel, oLevel string) (*entity.TournamentResult, error)
	GetScore(ctx context.Context) (entity.Score, error)
	ResetScore(ctx context.Context) error
}

type matchRequest struct {
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

type tournamentRequest struct {
	matchRequest
	Matches int `json:"matches"`
}

type moveResponse struct {
	Move entity.Cell `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handlers struct {
	logger  *slog.Logger
	matches matchUseCase
}

func NewHandlers(logger *slog.Logger, matches matchUseCase) *Handlers {
	return &Handlers{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}
}

func (that *Handlers) SuggestMove(w http.ResponseWriter, r *http.Request) {
	var req usecase.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	move, err := that.matches.SuggestMove(r.Context(), req)
	if err != nil {
		that.writeError(w, "SuggestMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Move: move})
}

func (that *Handlers) PlayMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	match, err := that.matches.PlayMatch(r.Context(), req.PlayerX, req.PlayerO)
	if err != nil {
		that.writeError(w, "PlayMatch", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, match)
}

func (that *Handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetMatch", err)
		return
	}

	that.writeJSON(w, http.StatusOK, match)
}

func (that *Handlers) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := that.matches.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "DeleteMatch", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) RunTournament(w http.ResponseWriter, r *http.Request) {
	var req tournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := that.matches.RunTournament(r.Context(), req.Matches, req.PlayerX, req.PlayerO)
	if err != nil {
		that.writeError(w, "RunTournament", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, result)
}

func (that *Handlers) GetScore(w http.ResponseWriter, r *http.Request) {
	score, err := that.matches.GetScore(r.Context())
	if err != nil {
		that.writeError(w, "GetScore", err)
		return
	}

	that.writeJSON(w, http.StatusOK, score)
}

func (that *Handlers) ResetScore(w http.ResponseWriter, r *http.Request) {
	if err := that.matches.ResetScore(r.Context()); err != nil {
		that.writeError(w, "ResetScore", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError - maps use case errors to HTTP statuses.
func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrUnknownStrategy),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidPosition),
		errors.Is(err, apperror.ErrInvalidMatchSize):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
