package entity

import "errors"

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

var ErrUnknownFontSize = errors.New("unknown font size")

// Size is the size class of a piece as rendered on a cell.
type Size int

const (
	SizeNone Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

const (
	fontSizeSmall  = "50px"
	fontSizeMedium = "100px"
	fontSizeLarge  = "150px"
)

// FontSize returns the rendered font size of the size class, "" for SizeNone.
func (that Size) FontSize() string {
	switch that {
	case SizeSmall:
		return fontSizeSmall
	case SizeMedium:
		return fontSizeMedium
	case SizeLarge:
		return fontSizeLarge
	default:
		return ""
	}
}

func (that Size) String() string {
	switch that {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "none"
	}
}

// ParseFontSize maps a rendered font size back to its size class.
func ParseFontSize(fontSize string) (Size, error) {
	switch fontSize {
	case fontSizeSmall:
		return SizeSmall, nil
	case fontSizeMedium:
		return SizeMedium, nil
	case fontSizeLarge:
		return SizeLarge, nil
	case "":
		return SizeNone, nil
	default:
		return SizeNone, ErrUnknownFontSize
	}
}

// Cell is one addressable square of the page: a palette piece or a board position.
type Cell struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Size        Size   `json:"-"`
	Highlighted bool   `json:"highlighted,omitempty"`
}

func (that *Cell) IsEmpty() bool {
	return that.Text == EmptyCell
}
