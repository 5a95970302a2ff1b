package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
	"github.com/rocketscienceinc/tictactoe-search/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-search/internal/search"
	"github.com/rocketscienceinc/tictactoe-search/internal/tictactoe"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type scoreRepo interface {
	Increment(ctx context.Context, winner string) error
	Get(ctx context.Context) (entity.Score, error)
	Reset(ctx context.Context) error
}

// MoveRequest describes a position by the marks on the board and the side to move.
// Positions are "x,y" strings, e.g. {"x_positions": ["1,1", "2,2"]}.
type MoveRequest struct {
	Level      string        `json:"level"`
	ToMove     string        `json:"to_move"`
	XPositions []entity.Cell `json:"x_positions"`
	OPositions []entity.Cell `json:"o_positions"`
}

// DefaultMaxMatches bounds a tournament when no limit is configured.
const DefaultMaxMatches = 1000

type MatchManager struct {
	logger *slog.Logger

	game   *tictactoe.Game
	random *search.Random[entity.State, entity.Cell]

	matchRepo matchRepo
	scoreRepo scoreRepo

	parallelism int
	maxMatches  int
}

func NewMatchManager(
	logger *slog.Logger,
	game *tictactoe.Game,
	source search.Source,
	matchRepo matchRepo,
	scoreRepo scoreRepo,
	parallelism int,
	maxMatches int,
) *MatchManager {
	if parallelism < 1 {
		parallelism = 1
	}

	if maxMatches < 1 {
		maxMatches = DefaultMaxMatches
	}

	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		game:   game,
		random: search.NewRandom[entity.State, entity.Cell](source),

		matchRepo: matchRepo,
		scoreRepo: scoreRepo,

		parallelism: parallelism,
		maxMatches:  maxMatches,
	}
}

// SuggestMove - the computer's move at the given level for the described position.
func (that *MatchManager) SuggestMove(ctx context.Context, req MoveRequest) (entity.Cell, error) {
	if req.ToMove != entity.PlayerX && req.ToMove != entity.PlayerO {
		return entity.Cell{}, fmt.Errorf("%w: mark %q", apperror.ErrInvalidMark, req.ToMove)
	}

	state, err := that.game.GenState(req.ToMove, req.XPositions, req.OPositions)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to build state: %w", err)
	}

	if that.game.TerminalTest(state) {
		return entity.Cell{}, apperror.ErrGameFinished
	}

	computer, err := that.playerFor(req.Level)
	if err != nil {
		return entity.Cell{}, err
	}

	move, err := computer(ctx, that.game, state)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to choose move: %w", err)
	}

	return move, nil
}

// PlayMatch - plays xLevel against oLevel to the end, stores the match and records the result.
func (that *MatchManager) PlayMatch(ctx context.Context, xLevel, oLevel string) (*entity.Match, error) {
	log := that.logger.With("method", "PlayMatch")

	playerX, err := that.playerFor(xLevel)
	if err != nil {
		return nil, err
	}

	playerO, err := that.playerFor(oLevel)
	if err != nil {
		return nil, err
	}

	outcome, err := search.PlayGame[entity.State, entity.Cell](ctx, that.logger, that.game, playerX, playerO)
	if err != nil {
		return nil, fmt.Errorf("failed to play match: %w", err)
	}

	match := &entity.Match{
		ID:        pkg.GenerateMatchID(),
		PlayerX:   xLevel,
		PlayerO:   oLevel,
		Moves:     outcome.Moves,
		Board:     that.game.Rows(outcome.Final),
		Winner:    outcome.Final.Winner(),
		Utility:   outcome.Utility,
		Status:    entity.StatusFinished,
		CreatedAt: time.Now().UTC(),
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	if err = that.scoreRepo.Increment(ctx, match.Winner); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	log.Info("match finished", "id", match.ID, "x", xLevel, "o", oLevel, "winner", match.Winner)

	return match, nil
}

// RunTournament - plays n matches concurrently and tallies the results.
func (that *MatchManager) RunTournament(ctx context.Context, n int, xLevel, oLevel string) (*entity.TournamentResult, error) {
	if n < 1 || n > that.maxMatches {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", apperror.ErrInvalidMatchSize, n, that.maxMatches)
	}

	// fail before spawning anything
	if _, err := that.playerFor(xLevel); err != nil {
		return nil, err
	}

	if _, err := that.playerFor(oLevel); err != nil {
		return nil, err
	}

	result := &entity.TournamentResult{
		PlayerX: xLevel,
		PlayerO: oLevel,
		Matches: make([]string, n),
	}

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.parallelism)

	for i := 0; i < n; i++ {
		group.Go(func() error {
			match, err := that.PlayMatch(groupCtx, xLevel, oLevel)
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}

			mu.Lock()
			defer mu.Unlock()

			result.Matches[i] = match.ID
			switch match.Winner {
			case entity.PlayerX:
				result.Score.X++
			case entity.PlayerO:
				result.Score.O++
			default:
				result.Score.Draws++
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("tournament failed: %w", err)
	}

	return result, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// DeleteMatch - removes a stored match. The scoreboard keeps its result.
func (that *MatchManager) DeleteMatch(ctx context.Context, id string) error {
	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	that.logger.Info("match deleted", "method", "DeleteMatch", "id", id)

	return nil
}

func (that *MatchManager) GetScore(ctx context.Context) (entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return entity.Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	return score, nil
}

func (that *MatchManager) ResetScore(ctx context.Context) error {
	if err := that.scoreRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset score: %w", err)
	}

	return nil
}

// recordResult - stores a finished interactive game on the scoreboard; errors are only logged.
func (that *MatchManager) recordResult(ctx context.Context, winner string) {
	log := that.logger.With("method", "recordResult")

	if err := that.scoreRepo.Increment(ctx, winner); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("failed to record result", "winner", winner, "error", err)
	}
}
