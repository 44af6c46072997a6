package engine

import (
	"fmt"

	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/model"
)

// advancePosition relocates a player by steps (signed, wrapping) and
// credits the pass-start bonus when a forward move wraps past Go
func (c *Controller) advancePosition(game *model.Game, player *model.Player, steps int, creditPassStart bool) {
	wrapped := steps > 0 && player.Position+steps >= model.BoardSize
	player.Position = ((player.Position+steps)%model.BoardSize + model.BoardSize) % model.BoardSize

	if wrapped && creditPassStart {
		player.Cash += c.config.PassStartBonus
		c.emit(model.Event{
			Type: model.EventPassedStart, GameID: game.ID, PlayerID: player.ID,
			Cell: board.GoIndex, Amount: c.config.PassStartBonus,
			Message: fmt.Sprintf("%s passed Go and collected $%d", player.Name, c.config.PassStartBonus),
		})
	}
}

// resolveLanding dispatches on the landed-on cell's variant. It may leave
// a buy or card decision pending; settlePhase picks the resting phase.
func (c *Controller) resolveLanding(game *model.Game, player *model.Player, diceTotal int) {
	cell := c.board.Cell(player.Position)

	c.emit(model.Event{
		Type: model.EventLanded, GameID: game.ID, PlayerID: player.ID, Cell: cell.Index,
		Message: fmt.Sprintf("%s landed on %s", player.Name, cell.Name),
	})

	switch cell.Type {
	case model.CellGoToJail:
		c.sendToJail(game, player)

	case model.CellStreet, model.CellRailroad, model.CellUtility:
		c.resolveOwnable(game, player, cell.Index, diceTotal)

	case model.CellTax:
		player.Cash -= cell.Tax.Amount
		c.emit(model.Event{
			Type: model.EventTaxPaid, GameID: game.ID, PlayerID: player.ID,
			Cell: cell.Index, Amount: cell.Tax.Amount,
			Message: fmt.Sprintf("%s paid $%d %s", player.Name, cell.Tax.Amount, cell.Name),
		})

	case model.CellChance:
		c.drawCard(game, player, model.DeckChance, diceTotal)

	case model.CellCommunityChest:
		c.drawCard(game, player, model.DeckCommunityChest, diceTotal)

	case model.CellGo, model.CellJail, model.CellFreeParking:
		// no effect
	}
}

// resolveOwnable handles landing on a street, railroad or utility
func (c *Controller) resolveOwnable(game *model.Game, player *model.Player, cellIndex int, diceTotal int) {
	owner := game.OwnerOf(cellIndex)

	if owner == model.NoPlayer {
		game.PendingBuy = cellIndex
		return
	}
	if owner == player.ID || game.Mortgaged[cellIndex] {
		return
	}

	// Negative cash is allowed to persist: bankruptcy is always an
	// explicit declaration, never automatic.
	amount := c.rentService.Amount(game, cellIndex, diceTotal)
	player.Cash -= amount
	game.Player(owner).Cash += amount

	c.emit(model.Event{
		Type: model.EventRentPaid, GameID: game.ID, PlayerID: player.ID,
		Cell: cellIndex, Amount: amount,
		Message: fmt.Sprintf("%s paid $%d rent to %s for %s",
			player.Name, amount, game.Player(owner).Name, c.board.Cell(cellIndex).Name),
	})
}

// drawCard draws the next card from the deck's fixed cycle. Automated
// players have the effect applied immediately; humans hold it as a
// pending decision until acknowledged.
func (c *Controller) drawCard(game *model.Game, player *model.Player, kind model.DeckKind, diceTotal int) {
	card := c.deckService.Draw(game, kind)

	c.emit(model.Event{
		Type: model.EventCardDrawn, GameID: game.ID, PlayerID: player.ID,
		Cell:    player.Position,
		Message: fmt.Sprintf("%s drew a card: %s", player.Name, card.Text),
	})

	if player.Kind == model.PlayerKindAutomated {
		c.applyCard(game, player, card, diceTotal)
		return
	}
	game.PendingCard = &model.DrawnCard{Deck: kind, Card: card}
}

// applyCard interprets a card's effect. A move effect re-invokes landing
// resolution at the new position and may leave a fresh decision pending.
func (c *Controller) applyCard(game *model.Game, player *model.Player, card model.Card, diceTotal int) {
	switch card.Effect {
	case model.EffectMoney:
		player.Cash += card.Amount

	case model.EffectMove:
		c.advancePosition(game, player, card.Steps, c.config.PassStartOnCardMove)
		c.resolveLanding(game, player, diceTotal)

	case model.EffectGoto:
		// Absolute relocation, no pass-start credit and no re-resolution
		player.Position = card.Position

	case model.EffectJail:
		c.sendToJail(game, player)

	case model.EffectJailFree:
		player.HasJailFreeCard = true

	case model.EffectCollectFromAll:
		for i := range game.Players {
			other := &game.Players[i]
			if other.ID == player.ID || other.IsBankrupt {
				continue
			}
			other.Cash -= card.Amount
			player.Cash += card.Amount
		}

	case model.EffectPayAll:
		for i := range game.Players {
			other := &game.Players[i]
			if other.ID == player.ID || other.IsBankrupt {
				continue
			}
			other.Cash += card.Amount
			player.Cash -= card.Amount
		}

	case model.EffectPayPerHouse:
		player.Cash -= card.Amount * game.TotalHousesOwnedBy(player.ID)
	}
}
