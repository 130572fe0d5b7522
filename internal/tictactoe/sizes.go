package tictactoe

import (
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-picker/internal/entity"
)

// SizeRule maps a marker found in a palette id to the size a moved piece gets.
type SizeRule struct {
	Marker string
	Size   entity.Size
}

// DefaultSizeRules are checked in order, the first marker found wins.
var DefaultSizeRules = []SizeRule{
	{Marker: suffixSmall, Size: entity.SizeSmall},
	{Marker: suffixMedium, Size: entity.SizeMedium},
	{Marker: suffixLarge, Size: entity.SizeLarge},
}

// SizeLabel returns the size encoded in an identifier such as "XS1".
// An id without a marker yields SizeNone, meaning no size change.
func SizeLabel(id string) entity.Size {
	return sizeFromRules(DefaultSizeRules, id)
}

func sizeFromRules(rules []SizeRule, id string) entity.Size {
	for _, rule := range rules {
		if strings.Contains(id, rule.Marker) {
			return rule.Size
		}
	}

	return entity.SizeNone
}

// SizeTable holds the size of every palette id, resolved once at load time.
type SizeTable struct {
	rules []SizeRule
	sizes map[string]entity.Size
}

func NewSizeTable(rules []SizeRule, sourceIDs []string) *SizeTable {
	table := &SizeTable{
		rules: rules,
		sizes: make(map[string]entity.Size, len(sourceIDs)),
	}

	for _, id := range sourceIDs {
		table.sizes[id] = sizeFromRules(rules, id)
	}

	return table
}

// Lookup returns the resolved size of id, scanning the rules for ids outside the table.
func (that *SizeTable) Lookup(id string) entity.Size {
	if size, ok := that.sizes[id]; ok {
		return size
	}

	return sizeFromRules(that.rules, id)
}

// Unsized returns the table ids that carry no size marker.
func (that *SizeTable) Unsized() []string {
	var ids []string
	for id, size := range that.sizes {
		if size == entity.SizeNone {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids
}
