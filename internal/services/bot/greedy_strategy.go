package bot

import (
	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/dependencies/random"
	"github.com/atherden/boardwalk/internal/model"
)

// cashReserve is the buffer the greedy strategy keeps before spending
const cashReserve = 150

// GreedyStrategy buys whatever it lands on, builds on its monopolies and
// leaves jail as cheaply as it can. It never proposes trades.
type GreedyStrategy struct {
	board  *board.Board
	random random.Random
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(b *board.Board, rnd random.Random) *GreedyStrategy {
	return &GreedyStrategy{board: b, random: rnd}
}

var _ Strategy = (*GreedyStrategy)(nil)

// Decide plans the whole turn from the snapshot
func (s *GreedyStrategy) Decide(snapshot *model.Game, playerID model.PlayerID) model.Decision {
	player := snapshot.Player(playerID)
	decision := model.Decision{}

	if t := snapshot.PendingTrade; t != nil && t.Status == model.TradeStatusPending && t.To == playerID {
		decision.PreRollActions = append(decision.PreRollActions, s.respondToTrade(snapshot, t))
	}

	if player.InJail {
		switch {
		case player.HasJailFreeCard:
			decision.PreRollActions = append(decision.PreRollActions, model.Action{Type: model.ActionUseJailFreeCard})
		case player.Cash >= cashReserve:
			decision.PreRollActions = append(decision.PreRollActions, model.Action{Type: model.ActionPayBail})
		default:
			decision.PreRollActions = append(decision.PreRollActions, model.Action{Type: model.ActionStayInJail})
			// A jail turn consumes the whole turn: no roll
			return decision
		}
	}

	decision.PreRollActions = append(decision.PreRollActions, s.buildActions(snapshot, playerID)...)

	decision.Roll = &model.DiceRoll{
		D1: s.random.Intn(6) + 1,
		D2: s.random.Intn(6) + 1,
	}

	// Landing decisions are planned optimistically; the runner resolves
	// whatever actually ends up pending after the roll
	decision.PostRollActions = append(decision.PostRollActions,
		model.Action{Type: model.ActionBuyProperty},
	)
	return decision
}

// respondToTrade accepts offers that hand over at least as much board
// value as they take
func (s *GreedyStrategy) respondToTrade(snapshot *model.Game, offer *model.TradeOffer) model.Action {
	incoming := offer.GiveCash - offer.TakeCash
	for _, idx := range offer.GiveProperties {
		incoming += s.board.Cell(idx).Price()
	}
	for _, idx := range offer.TakeProperties {
		incoming -= s.board.Cell(idx).Price()
	}
	if incoming >= 0 {
		return model.Action{Type: model.ActionAcceptTrade}
	}
	return model.Action{Type: model.ActionRejectTrade}
}

// buildActions lists affordable, legal house builds across the player's
// monopolies, cheapest group first, respecting the even-build rule
func (s *GreedyStrategy) buildActions(snapshot *model.Game, playerID model.PlayerID) []model.Action {
	var actions []model.Action
	cash := snapshot.Player(playerID).Cash

	for _, idx := range s.ownedMonopolyStreets(snapshot, playerID) {
		street := s.board.Cell(idx).Street
		if snapshot.Mortgaged[idx] || snapshot.HousesOn(idx) >= model.HotelCount {
			continue
		}
		if s.wouldBreakEvenBuild(snapshot, idx) {
			continue
		}
		if cash-street.HouseCost < cashReserve {
			continue
		}
		cash -= street.HouseCost
		actions = append(actions, model.Action{Type: model.ActionBuildHouse, Cell: idx})
	}
	return actions
}

// ownedMonopolyStreets returns streets in groups the player fully owns
func (s *GreedyStrategy) ownedMonopolyStreets(snapshot *model.Game, playerID model.PlayerID) []int {
	var out []int
	seen := make(map[model.ColorGroup]bool)

	for _, idx := range snapshot.CellsOwnedBy(playerID) {
		group := s.board.GroupOf(idx)
		if group == "" || seen[group] {
			continue
		}
		seen[group] = true

		full := true
		for _, member := range s.board.Group(group) {
			if snapshot.OwnerOf(member) != playerID {
				full = false
				break
			}
		}
		if full {
			out = append(out, s.board.Group(group)...)
		}
	}
	return out
}

func (s *GreedyStrategy) wouldBreakEvenBuild(snapshot *model.Game, cellIndex int) bool {
	group := s.board.GroupOf(cellIndex)
	count := snapshot.HousesOn(cellIndex)
	for _, member := range s.board.Group(group) {
		if member != cellIndex && count+1 > snapshot.HousesOn(member)+1 {
			return true
		}
	}
	return false
}
