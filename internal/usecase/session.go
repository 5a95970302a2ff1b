package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-search/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-search/internal/entity"
)

// Session is an interactive game between a human and the computer.
type Session struct {
	Level string
	Human string
	State entity.State
}

func (that *Session) IsFinished() bool {
	return that.State.Winner() != ""
}

// StartSession - opens a game against the computer. When the human plays O the
// computer opens and its move is returned.
func (that *MatchManager) StartSession(ctx context.Context, level, humanMark string) (*Session, *entity.Cell, error) {
	if humanMark != entity.PlayerX && humanMark != entity.PlayerO {
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
	}

	if _, err := that.playerFor(level); err != nil {
		return nil, nil, err
	}

	session := &Session{
		Level: level,
		Human: humanMark,
		State: that.game.Initial(),
	}

	if humanMark == entity.PlayerX {
		return session, nil, nil
	}

	reply, err := that.computerTurn(ctx, session)
	if err != nil {
		return nil, nil, err
	}

	return session, reply, nil
}

// SessionTurn - applies the human move and, unless that ended the game, the computer's reply.
func (that *MatchManager) SessionTurn(ctx context.Context, session *Session, cell entity.Cell) (*entity.Cell, error) {
	if session.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	if session.State.ToMove != session.Human {
		return nil, apperror.ErrNotYourTurn
	}

	next, err := that.game.Play(session.State, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}
	session.State = next

	if session.IsFinished() {
		that.recordResult(ctx, session.State.Winner())
		return nil, nil
	}

	return that.computerTurn(ctx, session)
}

func (that *MatchManager) computerTurn(ctx context.Context, session *Session) (*entity.Cell, error) {
	computer, err := that.playerFor(session.Level)
	if err != nil {
		return nil, err
	}

	move, err := computer(ctx, that.game, session.State)
	if err != nil {
		return nil, fmt.Errorf("computer failed to make turn: %w", err)
	}

	session.State = that.game.Result(session.State, move)

	if session.IsFinished() {
		that.recordResult(ctx, session.State.Winner())
	}

	return &move, nil
}

// Board - the session's board as rows of marks.
func (that *MatchManager) Board(session *Session) [][]string {
	return that.game.Rows(session.State)
}
