package board

import (
	"fmt"

	"github.com/atherden/boardwalk/internal/model"
)

// Landmark cell indices on the standard board
const (
	GoIndex          = 0
	JailIndex        = 10
	FreeParkingIndex = 20
	GoToJailIndex    = 30
)

// Board is the static, immutable description of the 40 cells. Malformed
// board data is a configuration defect: New fails loudly rather than
// letting a bad table reach the engine.
type Board struct {
	cells  []model.Cell
	groups map[model.ColorGroup][]int
}

// New validates the given cell table and builds the color-group index
func New(cells []model.Cell) (*Board, error) {
	if len(cells) != model.BoardSize {
		return nil, fmt.Errorf("board must have %d cells, got %d", model.BoardSize, len(cells))
	}

	groups := make(map[model.ColorGroup][]int)
	for i := range cells {
		c := &cells[i]
		if c.Index != i {
			return nil, fmt.Errorf("cell %d carries index %d", i, c.Index)
		}
		switch c.Type {
		case model.CellStreet:
			if c.Street == nil {
				return nil, fmt.Errorf("street cell %d has no street data", i)
			}
			if c.Street.Group == "" {
				return nil, fmt.Errorf("street cell %d has no color group", i)
			}
			groups[c.Street.Group] = append(groups[c.Street.Group], i)
		case model.CellRailroad:
			if c.Railroad == nil {
				return nil, fmt.Errorf("railroad cell %d has no railroad data", i)
			}
		case model.CellUtility:
			if c.Utility == nil {
				return nil, fmt.Errorf("utility cell %d has no utility data", i)
			}
		case model.CellTax:
			if c.Tax == nil {
				return nil, fmt.Errorf("tax cell %d has no tax data", i)
			}
		case model.CellChance, model.CellCommunityChest,
			model.CellGo, model.CellGoToJail, model.CellJail, model.CellFreeParking:
			// no payload
		default:
			return nil, fmt.Errorf("cell %d has unknown type %q", i, c.Type)
		}
	}

	for group, members := range groups {
		if len(members) < 2 {
			return nil, fmt.Errorf("color group %q has only %d cell(s)", group, len(members))
		}
	}

	return &Board{cells: cells, groups: groups}, nil
}

// Cell returns the cell at the given index
func (b *Board) Cell(index int) *model.Cell {
	return &b.cells[index]
}

// Cells returns all 40 cells in board order
func (b *Board) Cells() []model.Cell {
	return b.cells
}

// Group returns the cell indices of a color group in board order
func (b *Board) Group(group model.ColorGroup) []int {
	return b.groups[group]
}

// GroupOf returns the color group of a street cell, or "" for other cells
func (b *Board) GroupOf(cellIndex int) model.ColorGroup {
	c := &b.cells[cellIndex]
	if c.Type != model.CellStreet {
		return ""
	}
	return c.Street.Group
}

// Railroads returns the indices of all railroad cells
func (b *Board) Railroads() []int {
	var out []int
	for i := range b.cells {
		if b.cells[i].Type == model.CellRailroad {
			out = append(out, i)
		}
	}
	return out
}

// Utilities returns the indices of all utility cells
func (b *Board) Utilities() []int {
	var out []int
	for i := range b.cells {
		if b.cells[i].Type == model.CellUtility {
			out = append(out, i)
		}
	}
	return out
}
