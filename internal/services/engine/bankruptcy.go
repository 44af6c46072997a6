package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atherden/boardwalk/internal/model"
)

// DeclareBankrupt eliminates the active player. Bankruptcy is always an
// explicit declaration: negative cash on its own never triggers it. All
// assets return to the bank with nothing refunded, and the turn advances
// exactly as EndTurn would.
func (c *Controller) DeclareBankrupt(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	player := game.ActivePlayer()
	player.Cash = 0
	player.IsBankrupt = true
	player.InJail = false
	player.JailTurnsLeft = 0

	for _, idx := range game.CellsOwnedBy(playerID) {
		delete(game.Ownership, idx)
		delete(game.Mortgaged, idx)
		delete(game.Houses, idx)
	}

	// The eliminated player cannot resolve anything further
	game.PendingBuy = -1
	game.PendingCard = nil
	if t := game.PendingTrade; t != nil && (t.From == playerID || t.To == playerID) {
		game.PendingTrade = nil
	}

	c.emit(model.Event{
		Type: model.EventEliminated, GameID: game.ID, PlayerID: playerID, Cell: -1,
		Message: fmt.Sprintf("%s went bankrupt and is out of the game", player.Name),
	})

	if winner := game.Winner(); winner != model.NoPlayer {
		c.emit(model.Event{
			Type: model.EventGameWon, GameID: game.ID, PlayerID: winner, Cell: -1,
			Message: fmt.Sprintf("%s wins the game", game.Player(winner).Name),
		})
		c.logger.Info("game won",
			slog.String("game_id", string(game.ID)),
			slog.Int("winner", int(winner)),
		)
	} else {
		c.advanceToNextPlayer(game)
	}

	return c.save(ctx, game)
}
