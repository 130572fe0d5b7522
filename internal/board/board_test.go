package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-picker/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
	"github.com/rocketscienceinc/tictactoe-picker/internal/tictactoe"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()

	sourceIDs := []string{"XS1", "YL2"}
	sizes := tictactoe.NewSizeTable(tictactoe.DefaultSizeRules, sourceIDs)

	cells, err := BoardCells([]string{"1", "2"}, nil)
	require.NoError(t, err)

	b, err := New(PaletteCells(sourceIDs, sizes), cells)
	require.NoError(t, err)

	return b
}

func TestBoard_New(t *testing.T) {
	t.Run("Builds palette and board cells", func(t *testing.T) {
		// When: building a board with two palette pieces and two cells
		b := newTestBoard(t)

		// Then: palette pieces carry their mark and size
		xs1, err := b.Get("XS1")
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{ID: "XS1", Text: entity.PlayerX, Size: entity.SizeSmall}, xs1)

		yl2, err := b.Get("YL2")
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{ID: "YL2", Text: entity.PlayerO, Size: entity.SizeLarge}, yl2)

		// Then: board cells start empty
		cell, err := b.Get("1")
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{ID: "1"}, cell)
	})

	t.Run("Rejects duplicate ids", func(t *testing.T) {
		// When: the same id appears in the palette and the board
		_, err := New([]entity.Cell{{ID: "1"}}, []entity.Cell{{ID: "1"}})

		// Then: ErrDuplicateCell is returned
		require.ErrorIs(t, err, ErrDuplicateCell)
	})
}

func TestBoard_Mutations(t *testing.T) {
	t.Run("Unknown cell returns ErrCellNotFound", func(t *testing.T) {
		b := newTestBoard(t)

		_, errGet := b.Get("42")
		errSet := b.SetText("42", entity.PlayerX)

		require.ErrorIs(t, errGet, apperror.ErrCellNotFound)
		require.ErrorIs(t, errSet, apperror.ErrCellNotFound)
	})

	t.Run("ClearAllHighlights removes every marker", func(t *testing.T) {
		// Given: two highlighted cells
		b := newTestBoard(t)
		require.NoError(t, b.SetHighlighted("1", true))
		require.NoError(t, b.SetHighlighted("XS1", true))

		// When: clearing highlights
		b.ClearAllHighlights()

		// Then: no cell is highlighted
		view := b.Snapshot()
		for _, cell := range append(view.Palette, view.Board...) {
			assert.False(t, cell.Highlighted, cell.ID)
		}
	})

	t.Run("Reset restores the initial markup", func(t *testing.T) {
		// Given: a board after a move and a message
		b := newTestBoard(t)
		require.NoError(t, b.SetText("1", entity.PlayerX))
		require.NoError(t, b.SetSize("1", entity.SizeSmall))
		require.NoError(t, b.SetText("XS1", entity.EmptyCell))
		b.ShowMessage("Winner: X")

		// When: resetting the board
		b.Reset()

		// Then: cells and display are back to the start
		cell, err := b.Get("1")
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{ID: "1"}, cell)

		piece, err := b.Get("XS1")
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, piece.Text)
		assert.Empty(t, b.Display())
	})
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board with a moved piece
	b := newTestBoard(t)
	require.NoError(t, b.SetText("2", entity.PlayerO))
	require.NoError(t, b.SetSize("2", entity.SizeLarge))
	require.NoError(t, b.SetHighlighted("2", true))
	b.ShowMessage("Message: ok\n")

	// When: taking a snapshot
	view := b.Snapshot()

	// Then: cells are listed in layout order with rendered font sizes
	expected := &entity.BoardView{
		Palette: []entity.CellView{
			{ID: "XS1", Text: "X", FontSize: "50px"},
			{ID: "YL2", Text: "O", FontSize: "150px"},
		},
		Board: []entity.CellView{
			{ID: "1"},
			{ID: "2", Text: "O", FontSize: "150px", Highlighted: true},
		},
		Display: "Message: ok\n",
	}
	assert.Equal(t, expected, view)
}

func TestBoardCells(t *testing.T) {
	t.Run("Decodes initial tokens", func(t *testing.T) {
		cells, err := BoardCells([]string{"1", "2"}, []string{"1Z0", "2MY"})

		require.NoError(t, err)
		assert.Equal(t, []entity.Cell{
			{ID: "1"},
			{ID: "2", Text: entity.PlayerO, Size: entity.SizeMedium},
		}, cells)
	})

	t.Run("Token count must match", func(t *testing.T) {
		_, err := BoardCells([]string{"1", "2"}, []string{"1Z0"})

		require.Error(t, err)
	})

	t.Run("Token id must match the cell", func(t *testing.T) {
		_, err := BoardCells([]string{"1", "2"}, []string{"1Z0", "3Z0"})

		require.Error(t, err)
	})
}
