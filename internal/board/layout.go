package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-picker/internal/tictactoe"
)

// PaletteCells builds the palette markup: "X..." ids hold an X, "Y..." ids hold an O,
// sized after the marker in the id.
func PaletteCells(sourceIDs []string, sizes *tictactoe.SizeTable) []entity.Cell {
	cells := make([]entity.Cell, 0, len(sourceIDs))

	for _, id := range sourceIDs {
		cell := entity.Cell{ID: id, Size: sizes.Lookup(id)}

		switch {
		case strings.HasPrefix(id, "X"):
			cell.Text = entity.PlayerX
		case strings.HasPrefix(id, "Y"):
			cell.Text = entity.PlayerO
		}

		cells = append(cells, cell)
	}

	return cells
}

// BoardCells builds the board markup from tokens such as "1Z0".
// Without tokens every destination starts empty and unsized.
func BoardCells(destinationIDs, tokens []string) ([]entity.Cell, error) {
	if len(tokens) == 0 {
		cells := make([]entity.Cell, 0, len(destinationIDs))
		for _, id := range destinationIDs {
			cells = append(cells, entity.Cell{ID: id})
		}

		return cells, nil
	}

	if len(tokens) != len(destinationIDs) {
		return nil, fmt.Errorf("initial board has %d tokens for %d cells", len(tokens), len(destinationIDs))
	}

	cells := make([]entity.Cell, 0, len(tokens))
	for i, token := range tokens {
		cell, err := tictactoe.DecodeToken(token)
		if err != nil {
			return nil, fmt.Errorf("initial board: %w", err)
		}

		if cell.ID != destinationIDs[i] {
			return nil, fmt.Errorf("initial board token %q does not match cell %s", token, destinationIDs[i])
		}

		cells = append(cells, cell)
	}

	return cells, nil
}
