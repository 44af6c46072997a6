package engine

import (
	"context"
	"fmt"

	"github.com/atherden/boardwalk/internal/model"
)

// RollDice rolls two engine-generated dice for the active player and
// resolves the resulting movement and landing in one step
func (c *Controller) RollDice(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (model.DiceRoll, error) {
	roll := model.DiceRoll{
		D1: c.random.Intn(6) + 1,
		D2: c.random.Intn(6) + 1,
	}
	return roll, c.RollDiceValues(ctx, gameID, playerID, roll)
}

// RollDiceValues resolves a roll with caller-supplied dice. Automated
// players' collaborators provide dice this way; the values pass through
// the same movement and landing pipeline as an engine-generated roll.
func (c *Controller) RollDiceValues(ctx context.Context, gameID model.GameID, playerID model.PlayerID, roll model.DiceRoll) error {
	if roll.D1 < 1 || roll.D1 > 6 || roll.D2 < 1 || roll.D2 > 6 {
		return model.ErrInvalidDice
	}

	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if game.Phase != model.PhaseAwaitingRoll {
		return model.ErrWrongPhase
	}
	if game.RolledThisTurn {
		return model.ErrAlreadyRolled
	}
	player := game.ActivePlayer()
	if player.InJail {
		return model.ErrInJail
	}

	game.LastDice = [2]int{roll.D1, roll.D2}
	game.RolledThisTurn = true
	steps := roll.D1 + roll.D2

	c.emit(model.Event{
		Type: model.EventRolled, GameID: game.ID, PlayerID: playerID,
		Cell: -1, Amount: steps,
		Message: fmt.Sprintf("%s rolled %d and %d", player.Name, roll.D1, roll.D2),
	})

	game.Phase = model.PhaseMoving
	c.advancePosition(game, player, steps, true)

	game.Phase = model.PhaseResolvingLanding
	c.resolveLanding(game, player, steps)

	c.settlePhase(game)
	return c.save(ctx, game)
}

// BuyProperty consumes a pending buy decision by purchasing the cell
func (c *Controller) BuyProperty(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if game.PendingBuy < 0 {
		return model.ErrNoDecisionPending
	}

	cellIndex := game.PendingBuy
	cell := c.board.Cell(cellIndex)
	player := game.ActivePlayer()
	if game.OwnerOf(cellIndex) != model.NoPlayer {
		return model.ErrCellOwned
	}
	if player.Cash <= cell.Price() {
		return model.ErrInsufficientFunds
	}

	player.Cash -= cell.Price()
	game.Ownership[cellIndex] = playerID
	game.PendingBuy = -1
	game.Phase = model.PhasePostDecision

	c.emit(model.Event{
		Type: model.EventBought, GameID: game.ID, PlayerID: playerID,
		Cell: cellIndex, Amount: cell.Price(),
		Message: fmt.Sprintf("%s bought %s for $%d", player.Name, cell.Name, cell.Price()),
	})
	return c.save(ctx, game)
}

// SkipProperty consumes a pending buy decision by declining the purchase
func (c *Controller) SkipProperty(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if game.PendingBuy < 0 {
		return model.ErrNoDecisionPending
	}

	game.PendingBuy = -1
	game.Phase = model.PhasePostDecision
	return c.save(ctx, game)
}

// AcknowledgeChanceCard applies the card a human player drew and clears
// the pending decision. Automated players never hold a pending card.
func (c *Controller) AcknowledgeChanceCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if game.PendingCard == nil {
		return model.ErrNoDecisionPending
	}

	drawn := *game.PendingCard
	game.PendingCard = nil
	c.applyCard(game, game.ActivePlayer(), drawn.Card, game.LastDice[0]+game.LastDice[1])

	c.settlePhase(game)
	return c.save(ctx, game)
}

// EndTurn hands the turn to the next non-bankrupt player. Legal only once
// the turn has been consumed (a roll, or a jail turn) and no decision is
// pending; any unresolved trade offer is cleared.
func (c *Controller) EndTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if !game.RolledThisTurn {
		return model.ErrRollRequired
	}
	if game.DecisionPending() {
		return model.ErrDecisionPending
	}

	game.PendingTrade = nil
	player := game.ActivePlayer()
	c.advanceToNextPlayer(game)

	c.emit(model.Event{
		Type: model.EventTurnEnded, GameID: game.ID, PlayerID: playerID, Cell: -1,
		Message: fmt.Sprintf("%s ended their turn", player.Name),
	})
	return c.save(ctx, game)
}

// settlePhase moves the game to its resting phase after resolution
func (c *Controller) settlePhase(game *model.Game) {
	if game.DecisionPending() {
		game.Phase = model.PhaseAwaitingDecision
	} else {
		game.Phase = model.PhasePostDecision
	}
}

// advanceToNextPlayer rotates the active index past bankrupt players and
// resets per-turn state
func (c *Controller) advanceToNextPlayer(game *model.Game) {
	game.Phase = model.PhaseTurnComplete
	n := len(game.Players)
	for i := 1; i <= n; i++ {
		idx := (game.ActiveIdx + i) % n
		if !game.Players[idx].IsBankrupt {
			game.ActiveIdx = idx
			break
		}
	}
	game.RolledThisTurn = false
	game.Turn++
	game.Phase = model.PhaseAwaitingRoll
}
