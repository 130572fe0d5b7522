package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

const (
	suffixSmall   = "S"
	suffixMedium  = "M"
	suffixLarge   = "L"
	suffixNoSize  = "Z"
	suffixPlayerX = "X"
	suffixPlayerO = "Y"
	suffixEmpty   = "0"

	tokenSeparator = "-"
)

var ErrInvalidToken = errors.New("invalid cell token")

// SizeSuffix returns the size letter of the cell as it is rendered right now.
func SizeSuffix(cell entity.Cell) string {
	switch cell.Size {
	case entity.SizeSmall:
		return suffixSmall
	case entity.SizeMedium:
		return suffixMedium
	case entity.SizeLarge:
		return suffixLarge
	default:
		return suffixNoSize
	}
}

// OccupantSuffix returns the occupant letter for the cell text.
// Text other than "X" or "O" is encoded as an empty cell.
func OccupantSuffix(text string) string {
	switch text {
	case entity.PlayerX:
		return suffixPlayerX
	case entity.PlayerO:
		return suffixPlayerO
	default:
		return suffixEmpty
	}
}

// Encode builds the wire token of a cell: id + size letter + occupant letter.
func Encode(cell entity.Cell) string {
	return cell.ID + SizeSuffix(cell) + OccupantSuffix(cell.Text)
}

// EncodeBoard joins the tokens of the cells in the given order.
func EncodeBoard(cells []entity.Cell) string {
	tokens := make([]string, 0, len(cells))
	for _, cell := range cells {
		tokens = append(tokens, Encode(cell))
	}

	return strings.Join(tokens, tokenSeparator)
}

// DecodeToken splits a token produced by Encode back into a cell.
func DecodeToken(token string) (entity.Cell, error) {
	if len(token) < 3 {
		return entity.Cell{}, fmt.Errorf("%w: %q is too short", ErrInvalidToken, token)
	}

	id := token[:len(token)-2]
	sizeLetter := token[len(token)-2 : len(token)-1]
	occupantLetter := token[len(token)-1:]

	cell := entity.Cell{ID: id}

	switch sizeLetter {
	case suffixSmall:
		cell.Size = entity.SizeSmall
	case suffixMedium:
		cell.Size = entity.SizeMedium
	case suffixLarge:
		cell.Size = entity.SizeLarge
	case suffixNoSize:
		cell.Size = entity.SizeNone
	default:
		return entity.Cell{}, fmt.Errorf("%w: unknown size %q in %q", ErrInvalidToken, sizeLetter, token)
	}

	switch occupantLetter {
	case suffixPlayerX:
		cell.Text = entity.PlayerX
	case suffixPlayerO:
		cell.Text = entity.PlayerO
	case suffixEmpty:
		cell.Text = entity.EmptyCell
	default:
		return entity.Cell{}, fmt.Errorf("%w: unknown occupant %q in %q", ErrInvalidToken, occupantLetter, token)
	}

	return cell, nil
}
