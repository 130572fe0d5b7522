package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

const (
	MessageSelectFromPlayers  = "You need to select from players first"
	MessageReselectFromPlayer = "Reselect from player"
)

// Board is the page surface the controller reads and mutates.
type Board interface {
	Get(id string) (entity.Cell, error)
	SetText(id, text string) error
	SetSize(id string, size entity.Size) error
	SetHighlighted(id string, highlighted bool) error
	ClearAllHighlights()
	ShowMessage(message string)
}

// Validator receives the encoded board after every completed move.
// Discard drops the answers still pending for boards submitted earlier.
type Validator interface {
	Submit(ctx context.Context, encodedBoard string)
	Discard()
}

// GameController runs the two-click selection: a palette piece first, a board cell second.
type GameController struct {
	logger *slog.Logger

	board     Board
	validator Validator
	sizes     *SizeTable

	sourceIDs      []string
	destinationIDs []string

	state entity.SelectionState
}

func NewGameController(logger *slog.Logger, board Board, validator Validator, sizes *SizeTable, sourceIDs, destinationIDs []string) *GameController {
	return &GameController{
		logger:         logger.With("component", "game_controller"),
		board:          board,
		validator:      validator,
		sizes:          sizes,
		sourceIDs:      slices.Clone(sourceIDs),
		destinationIDs: slices.Clone(destinationIDs),
		state:          entity.Idle(),
	}
}

func (that *GameController) State() entity.SelectionState {
	return that.state
}

// Reset drops any selection in progress and the validations not answered yet.
func (that *GameController) Reset() {
	that.state = entity.Idle()
	that.validator.Discard()
}

// HandleClick applies one click on the cell with the given id.
// Illegal clicks show a message on the board and return an error wrapping apperror.ErrIllegalSelection.
func (that *GameController) HandleClick(ctx context.Context, id string) error {
	log := that.logger.With("method", "HandleClick", "cell", id, "state", that.state.String())

	target, err := that.board.Get(id)
	if err != nil {
		return fmt.Errorf("failed to get clicked cell: %w", err)
	}

	source, awaiting := that.state.Source()

	if !awaiting && !slices.Contains(that.sourceIDs, target.ID) {
		that.board.ClearAllHighlights()
		that.board.ShowMessage(MessageSelectFromPlayers)
		log.Debug("rejected first click outside the players")

		return apperror.ErrSelectFromPlayersFirst
	}

	if awaiting && !slices.Contains(that.destinationIDs, target.ID) {
		that.board.ClearAllHighlights()
		that.board.ShowMessage(MessageReselectFromPlayer)
		that.state = entity.Idle()
		log.Debug("rejected second click outside the board")

		return apperror.ErrReselectFromPlayer
	}

	that.board.ClearAllHighlights()
	if err = that.board.SetHighlighted(target.ID, true); err != nil {
		return fmt.Errorf("failed to highlight cell: %w", err)
	}

	if !awaiting {
		that.state = entity.AwaitingDestination(target.ID)
		log.Debug("source picked")

		return nil
	}

	that.state = entity.Idle()

	if err = that.swap(source, target.ID); err != nil {
		return fmt.Errorf("failed to move piece: %w", err)
	}

	if err = that.validateAndSend(ctx); err != nil {
		return fmt.Errorf("failed to send board: %w", err)
	}

	log.Debug("piece moved", "source", source)

	return nil
}

// swap moves the piece of the source cell onto the destination cell.
func (that *GameController) swap(sourceID, destinationID string) error {
	source, err := that.board.Get(sourceID)
	if err != nil {
		return fmt.Errorf("source %s: %w", sourceID, err)
	}

	if err = that.board.SetText(destinationID, source.Text); err != nil {
		return fmt.Errorf("destination %s: %w", destinationID, err)
	}

	if size := that.sizes.Lookup(sourceID); size != entity.SizeNone {
		if err = that.board.SetSize(destinationID, size); err != nil {
			return fmt.Errorf("destination %s: %w", destinationID, err)
		}
	}

	if err = that.board.SetText(sourceID, entity.EmptyCell); err != nil {
		return fmt.Errorf("source %s: %w", sourceID, err)
	}

	if err = that.board.SetHighlighted(sourceID, false); err != nil {
		return fmt.Errorf("source %s: %w", sourceID, err)
	}

	return nil
}

// validateAndSend encodes the board cells in configured order and hands them to the validator.
func (that *GameController) validateAndSend(ctx context.Context) error {
	cells := make([]entity.Cell, 0, len(that.destinationIDs))

	for _, id := range that.destinationIDs {
		cell, err := that.board.Get(id)
		if err != nil {
			return fmt.Errorf("board cell %s: %w", id, err)
		}
		cells = append(cells, cell)
	}

	that.validator.Submit(ctx, EncodeBoard(cells))

	return nil
}
