package rent

import (
	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/model"
)

// Service computes the rent owed when a player lands on an owned cell.
// It is a pure calculation over the board and the game state.
type Service struct {
	board *board.Board
}

// New creates a new rent Service
func New(b *board.Board) *Service {
	return &Service{board: b}
}

// Amount returns the rent owed for landing on the given cell with the
// given dice total. Mortgaged cells and bank-owned cells owe nothing.
func (s *Service) Amount(game *model.Game, cellIndex int, diceTotal int) int {
	owner := game.OwnerOf(cellIndex)
	if owner == model.NoPlayer || game.Mortgaged[cellIndex] {
		return 0
	}

	cell := s.board.Cell(cellIndex)
	switch cell.Type {
	case model.CellStreet:
		// Base rent with no monopoly doubling; houses index the rent table,
		// with 5 meaning a hotel.
		houses := game.HousesOn(cellIndex)
		if houses > model.HotelCount {
			houses = model.HotelCount
		}
		return cell.Street.Rent[houses]

	case model.CellRailroad:
		n := s.unmortgagedOwned(game, owner, s.board.Railroads())
		// n >= 1: the landed-on railroad itself is owned and unmortgaged
		return cell.Railroad.Rent[n-1]

	case model.CellUtility:
		n := s.unmortgagedOwned(game, owner, s.board.Utilities())
		multiplier := cell.Utility.OneOwned
		if n == 2 {
			multiplier = cell.Utility.TwoOwned
		}
		return diceTotal * multiplier
	}

	return 0
}

// unmortgagedOwned counts how many of the given cells the owner holds unmortgaged
func (s *Service) unmortgagedOwned(game *model.Game, owner model.PlayerID, cells []int) int {
	n := 0
	for _, idx := range cells {
		if game.OwnerOf(idx) == owner && !game.Mortgaged[idx] {
			n++
		}
	}
	return n
}
