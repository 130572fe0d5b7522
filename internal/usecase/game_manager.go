package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

type gameController interface {
	HandleClick(ctx context.Context, id string) error
	State() entity.SelectionState
	Reset()
}

type boardSurface interface {
	Snapshot() *entity.BoardView
	Reset()
}

type history interface {
	History(ctx context.Context, limit int64) ([]*entity.ValidationRecord, error)
	Rotate(ctx context.Context) error
}

// GameManager runs one click at a time against the page, like a browser event loop.
type GameManager struct {
	logger *slog.Logger

	mu         sync.Mutex
	controller gameController
	board      boardSurface
	history    history
}

func NewGameManager(logger *slog.Logger, controller gameController, board boardSurface, history history) *GameManager {
	return &GameManager{
		logger:     logger,
		controller: controller,
		board:      board,
		history:    history,
	}
}

// Click applies a click and returns the page as it looks afterwards.
// Illegal selections are not errors here: the page already carries the message.
func (that *GameManager) Click(ctx context.Context, cellID string) (*entity.BoardView, error) {
	log := that.logger.With("method", "Click", "cell", cellID)

	that.mu.Lock()
	defer that.mu.Unlock()

	err := that.controller.HandleClick(ctx, cellID)
	if errors.Is(err, apperror.ErrIllegalSelection) {
		log.Info("illegal selection", "reason", err)
	} else if err != nil {
		return nil, fmt.Errorf("failed to handle click: %w", err)
	}

	return that.view(), nil
}

// Restart puts the page back to its initial markup.
func (that *GameManager) Restart(ctx context.Context) *entity.BoardView {
	log := that.logger.With("method", "Restart")

	that.mu.Lock()
	defer that.mu.Unlock()

	that.controller.Reset()
	that.board.Reset()

	if err := that.history.Rotate(ctx); err != nil {
		log.Error("failed to rotate history session", "error", err)
	}

	log.Info("game restarted")

	return that.view()
}

func (that *GameManager) View() *entity.BoardView {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

func (that *GameManager) History(ctx context.Context, limit int64) ([]*entity.ValidationRecord, error) {
	records, err := that.history.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return records, nil
}

func (that *GameManager) view() *entity.BoardView {
	view := that.board.Snapshot()
	view.Selection = that.controller.State().String()

	return view
}
