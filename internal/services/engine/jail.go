package engine

import (
	"context"
	"fmt"

	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/model"
)

// sendToJail puts a player in jail. Entry happens via the Go-To-Jail cell
// or a jail card, never as a player command.
func (c *Controller) sendToJail(game *model.Game, player *model.Player) {
	player.InJail = true
	player.JailTurnsLeft = c.config.MaxJailTurns
	player.Position = board.JailIndex

	c.emit(model.Event{
		Type: model.EventJailed, GameID: game.ID, PlayerID: player.ID, Cell: board.JailIndex,
		Message: fmt.Sprintf("%s was sent to jail", player.Name),
	})
}

// jailCommand validates a pre-roll jail action for the active player
func (c *Controller) jailCommand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if game.Phase != model.PhaseAwaitingRoll {
		return nil, model.ErrWrongPhase
	}
	if !game.ActivePlayer().InJail {
		return nil, model.ErrNotInJail
	}
	return game, nil
}

// PayBail releases the active player immediately for the fixed bail.
// The jail turn still consumes the whole turn: no roll happens.
func (c *Controller) PayBail(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.jailCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	player := game.ActivePlayer()
	if player.Cash < c.config.Bail {
		return model.ErrInsufficientFunds
	}

	player.Cash -= c.config.Bail
	c.release(game, player, fmt.Sprintf("%s paid $%d bail and left jail", player.Name, c.config.Bail))
	c.consumeJailTurn(game)
	return c.save(ctx, game)
}

// UseJailFreeCard releases the active player by spending a held card
func (c *Controller) UseJailFreeCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.jailCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	player := game.ActivePlayer()
	if !player.HasJailFreeCard {
		return model.ErrNoJailCard
	}

	player.HasJailFreeCard = false
	c.release(game, player, fmt.Sprintf("%s used a Get Out of Jail Free card", player.Name))
	c.consumeJailTurn(game)
	return c.save(ctx, game)
}

// StayInJail serves one forced jail turn. When the countdown reaches zero
// the release is unconditional and costs nothing.
func (c *Controller) StayInJail(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.jailCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	player := game.ActivePlayer()
	player.JailTurnsLeft--
	if player.JailTurnsLeft <= 0 {
		player.JailTurnsLeft = 0
		c.release(game, player, fmt.Sprintf("%s served their sentence and left jail", player.Name))
	}

	c.consumeJailTurn(game)
	return c.save(ctx, game)
}

// release clears the jail flags and reports the release
func (c *Controller) release(game *model.Game, player *model.Player, message string) {
	player.InJail = false
	player.JailTurnsLeft = 0
	c.emit(model.Event{
		Type: model.EventJailLeft, GameID: game.ID, PlayerID: player.ID,
		Cell: board.JailIndex, Message: message,
	})
}

// consumeJailTurn marks the turn spent: a jail turn never includes a roll
func (c *Controller) consumeJailTurn(game *model.Game) {
	game.RolledThisTurn = true
	game.Phase = model.PhasePostDecision
}
