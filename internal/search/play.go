package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var ErrNoPlayers = errors.New("at least one player is required")

// Outcome is how a game driven by PlayGame ended.
type Outcome[S any, M comparable] struct {
	// Utility of the final state for the player who moved first.
	Utility float64
	Final   S
	Moves   []M
}

// PlayGame - alternates players in the given order from game.Initial() until a terminal
// state is reached. It does not return on its own if the game never terminates.
func PlayGame[S any, M comparable](
	ctx context.Context,
	logger *slog.Logger,
	game Playable[S, M],
	players ...Player[S, M],
) (Outcome[S, M], error) {
	if len(players) == 0 {
		return Outcome[S, M]{}, ErrNoPlayers
	}

	log := logger.With("method", "PlayGame")

	initial := game.Initial()
	state := initial

	var moves []M
	for {
		for i, player := range players {
			if err := ctx.Err(); err != nil {
				return Outcome[S, M]{}, fmt.Errorf("game interrupted: %w", err)
			}

			move, err := player(ctx, game, state)
			if err != nil {
				return Outcome[S, M]{}, fmt.Errorf("player %d failed to move: %w", i, err)
			}

			state = game.Result(state, move)
			moves = append(moves, move)

			log.Debug("move played", "player", i, "move", move)

			if game.TerminalTest(state) {
				log.Info("game over", "board", game.Display(state))

				return Outcome[S, M]{
					Utility: game.Utility(state, game.ToMove(initial)),
					Final:   state,
					Moves:   moves,
				}, nil
			}
		}
	}
}
