package entity

import "time"

// CellView is the rendered state of a cell as exposed to clients.
type CellView struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	FontSize    string `json:"font_size,omitempty"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

// BoardView is a snapshot of the whole page.
type BoardView struct {
	Palette   []CellView `json:"palette"`
	Board     []CellView `json:"board"`
	Display   string     `json:"display"`
	Selection string     `json:"selection"`
}

func NewCellView(cell Cell) CellView {
	return CellView{
		ID:          cell.ID,
		Text:        cell.Text,
		FontSize:    cell.Size.FontSize(),
		Highlighted: cell.Highlighted,
	}
}

// ValidationRecord is one rendered answer of the validation authority.
type ValidationRecord struct {
	GameBoard string              `json:"game_board"`
	Response  *ValidationResponse `json:"response"`
	Rendered  string              `json:"rendered"`
	CreatedAt time.Time           `json:"created_at"`
}
