package ledger

import (
	"log/slog"

	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/model"
)

// Service enforces legality and bookkeeping for houses, hotels and
// mortgages. It validates fully before mutating, so a rejected operation
// leaves the game untouched. Persistence belongs to the caller.
type Service struct {
	board  *board.Board
	logger *slog.Logger
}

// New creates a new improvement ledger
func New(b *board.Board, logger *slog.Logger) *Service {
	return &Service{
		board:  b,
		logger: logger.With(slog.String("component", "ledger")),
	}
}

// BuildHouse adds one house (or the hotel, at count 5) to a street
func (s *Service) BuildHouse(game *model.Game, playerID model.PlayerID, cellIndex int) error {
	cell := s.board.Cell(cellIndex)
	if cell.Type != model.CellStreet {
		return model.ErrNotAStreet
	}
	if game.OwnerOf(cellIndex) != playerID {
		return model.ErrNotOwner
	}
	if !s.ownsFullGroup(game, playerID, cell.Street.Group) {
		return model.ErrIncompleteColorGroup
	}
	if game.Mortgaged[cellIndex] {
		return model.ErrMortgaged
	}

	count := game.HousesOn(cellIndex)
	if count >= model.HotelCount {
		return model.ErrHotelCap
	}
	if count+1 > s.groupMin(game, cell.Street.Group, cellIndex)+1 {
		return model.ErrUnevenBuild
	}

	player := game.Player(playerID)
	if player.Cash < cell.Street.HouseCost {
		return model.ErrInsufficientFunds
	}

	player.Cash -= cell.Street.HouseCost
	game.Houses[cellIndex] = count + 1

	s.logger.Debug("house built",
		slog.String("game_id", string(game.ID)),
		slog.Int("player", int(playerID)),
		slog.Int("cell", cellIndex),
		slog.Int("houses", count+1),
	)
	return nil
}

// SellHouse removes one house from a street, crediting half the house cost
func (s *Service) SellHouse(game *model.Game, playerID model.PlayerID, cellIndex int) error {
	cell := s.board.Cell(cellIndex)
	if cell.Type != model.CellStreet {
		return model.ErrNotAStreet
	}
	if game.OwnerOf(cellIndex) != playerID {
		return model.ErrNotOwner
	}

	count := game.HousesOn(cellIndex)
	if count == 0 {
		return model.ErrNoHouses
	}
	if count-1 < s.groupMax(game, cell.Street.Group, cellIndex)-1 {
		return model.ErrUnevenBuild
	}

	game.Player(playerID).Cash += cell.Street.HouseCost / 2
	if count == 1 {
		delete(game.Houses, cellIndex)
	} else {
		game.Houses[cellIndex] = count - 1
	}
	return nil
}

// Mortgage marks an unimproved owned cell mortgaged, crediting its value
func (s *Service) Mortgage(game *model.Game, playerID model.PlayerID, cellIndex int) error {
	cell := s.board.Cell(cellIndex)
	if !cell.Ownable() {
		return model.ErrCellNotOwnable
	}
	if game.OwnerOf(cellIndex) != playerID {
		return model.ErrNotOwner
	}
	if game.Mortgaged[cellIndex] {
		return model.ErrMortgaged
	}
	if game.HousesOn(cellIndex) > 0 {
		return model.ErrHasHouses
	}

	game.Player(playerID).Cash += cell.MortgageValue()
	game.Mortgaged[cellIndex] = true
	return nil
}

// Unmortgage clears a mortgage for the value plus 10% interest
func (s *Service) Unmortgage(game *model.Game, playerID model.PlayerID, cellIndex int) error {
	cell := s.board.Cell(cellIndex)
	if !cell.Ownable() {
		return model.ErrCellNotOwnable
	}
	if game.OwnerOf(cellIndex) != playerID {
		return model.ErrNotOwner
	}
	if !game.Mortgaged[cellIndex] {
		return model.ErrNotMortgaged
	}

	cost := cell.MortgageValue() * 11 / 10
	player := game.Player(playerID)
	if player.Cash < cost {
		return model.ErrInsufficientFunds
	}

	player.Cash -= cost
	delete(game.Mortgaged, cellIndex)
	return nil
}

// ownsFullGroup reports whether the player holds every cell of the group
func (s *Service) ownsFullGroup(game *model.Game, playerID model.PlayerID, group model.ColorGroup) bool {
	for _, idx := range s.board.Group(group) {
		if game.OwnerOf(idx) != playerID {
			return false
		}
	}
	return true
}

// groupMin returns the lowest house count among the group's other cells
func (s *Service) groupMin(game *model.Game, group model.ColorGroup, except int) int {
	min := model.HotelCount
	for _, idx := range s.board.Group(group) {
		if idx == except {
			continue
		}
		if c := game.HousesOn(idx); c < min {
			min = c
		}
	}
	return min
}

// groupMax returns the highest house count among the group's other cells
func (s *Service) groupMax(game *model.Game, group model.ColorGroup, except int) int {
	max := 0
	for _, idx := range s.board.Group(group) {
		if idx == except {
			continue
		}
		if c := game.HousesOn(idx); c > max {
			max = c
		}
	}
	return max
}
