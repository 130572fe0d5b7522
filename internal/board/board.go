// Package board keeps the page state in memory: palette pieces, board cells and the display region.
package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

var ErrDuplicateCell = errors.New("duplicate cell id")

type Board struct {
	mu sync.RWMutex

	paletteIDs []string
	boardIDs   []string

	initial map[string]entity.Cell
	cells   map[string]*entity.Cell
	display string
}

// New builds a board from its initial markup. Palette and board ids must all be distinct.
func New(palette, board []entity.Cell) (*Board, error) {
	that := &Board{
		initial: make(map[string]entity.Cell, len(palette)+len(board)),
	}

	for _, group := range [][]entity.Cell{palette, board} {
		for _, cell := range group {
			if _, ok := that.initial[cell.ID]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCell, cell.ID)
			}

			cell.Highlighted = false
			that.initial[cell.ID] = cell
		}
	}

	for _, cell := range palette {
		that.paletteIDs = append(that.paletteIDs, cell.ID)
	}

	for _, cell := range board {
		that.boardIDs = append(that.boardIDs, cell.ID)
	}

	that.Reset()

	return that, nil
}

// Reset restores the initial markup and clears the display.
func (that *Board) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cells = make(map[string]*entity.Cell, len(that.initial))
	for id, cell := range that.initial {
		cell := cell
		that.cells[id] = &cell
	}

	that.display = ""
}

func (that *Board) Get(id string) (entity.Cell, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	cell, ok := that.cells[id]
	if !ok {
		return entity.Cell{}, fmt.Errorf("%w: %s", apperror.ErrCellNotFound, id)
	}

	return *cell, nil
}

func (that *Board) SetText(id, text string) error {
	return that.update(id, func(cell *entity.Cell) {
		cell.Text = text
	})
}

func (that *Board) SetSize(id string, size entity.Size) error {
	return that.update(id, func(cell *entity.Cell) {
		cell.Size = size
	})
}

func (that *Board) SetHighlighted(id string, highlighted bool) error {
	return that.update(id, func(cell *entity.Cell) {
		cell.Highlighted = highlighted
	})
}

func (that *Board) ClearAllHighlights() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, cell := range that.cells {
		cell.Highlighted = false
	}
}

// ShowMessage replaces the display region with a message.
func (that *Board) ShowMessage(message string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.display = message
}

func (that *Board) Display() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.display
}

// Snapshot returns the cells in layout order together with the display text.
func (that *Board) Snapshot() *entity.BoardView {
	that.mu.RLock()
	defer that.mu.RUnlock()

	view := &entity.BoardView{
		Palette: make([]entity.CellView, 0, len(that.paletteIDs)),
		Board:   make([]entity.CellView, 0, len(that.boardIDs)),
		Display: that.display,
	}

	for _, id := range that.paletteIDs {
		view.Palette = append(view.Palette, entity.NewCellView(*that.cells[id]))
	}

	for _, id := range that.boardIDs {
		view.Board = append(view.Board, entity.NewCellView(*that.cells[id]))
	}

	return view
}

func (that *Board) update(id string, apply func(cell *entity.Cell)) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	cell, ok := that.cells[id]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrCellNotFound, id)
	}

	apply(cell)

	return nil
}
