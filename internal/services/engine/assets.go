package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/atherden/boardwalk/internal/model"
)

// assetCommand validates an asset-management action for the active
// player. Building, selling and mortgaging are legal while the turn is
// resting before the roll or after the landing is resolved, never while
// a decision is pending.
func (c *Controller) assetCommand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.activeCommand(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if game.DecisionPending() {
		return nil, model.ErrDecisionPending
	}
	if game.Phase != model.PhaseAwaitingRoll && game.Phase != model.PhasePostDecision {
		return nil, model.ErrWrongPhase
	}
	return game, nil
}

// BuildHouse adds a house (or hotel) to a street the player monopolizes
func (c *Controller) BuildHouse(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error {
	game, err := c.assetCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if err := c.ledger.BuildHouse(game, playerID, cellIndex); err != nil {
		return err
	}

	c.emit(model.Event{
		Type: model.EventBuilt, GameID: game.ID, PlayerID: playerID, Cell: cellIndex,
		Amount:  game.HousesOn(cellIndex),
		Message: fmt.Sprintf("%s built on %s", game.Player(playerID).Name, c.board.Cell(cellIndex).Name),
	})
	return c.save(ctx, game)
}

// SellHouse removes a house from a street for half its cost
func (c *Controller) SellHouse(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error {
	game, err := c.assetCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if err := c.ledger.SellHouse(game, playerID, cellIndex); err != nil {
		return err
	}

	c.emit(model.Event{
		Type: model.EventSold, GameID: game.ID, PlayerID: playerID, Cell: cellIndex,
		Amount:  game.HousesOn(cellIndex),
		Message: fmt.Sprintf("%s sold a house on %s", game.Player(playerID).Name, c.board.Cell(cellIndex).Name),
	})
	return c.save(ctx, game)
}

// Mortgage mortgages an unimproved owned cell
func (c *Controller) Mortgage(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error {
	game, err := c.assetCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if err := c.ledger.Mortgage(game, playerID, cellIndex); err != nil {
		return err
	}

	c.emit(model.Event{
		Type: model.EventMortgaged, GameID: game.ID, PlayerID: playerID, Cell: cellIndex,
		Amount:  c.board.Cell(cellIndex).MortgageValue(),
		Message: fmt.Sprintf("%s mortgaged %s", game.Player(playerID).Name, c.board.Cell(cellIndex).Name),
	})
	return c.save(ctx, game)
}

// Unmortgage lifts a mortgage for the value plus interest
func (c *Controller) Unmortgage(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error {
	game, err := c.assetCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	if err := c.ledger.Unmortgage(game, playerID, cellIndex); err != nil {
		return err
	}

	c.emit(model.Event{
		Type: model.EventUnmortgaged, GameID: game.ID, PlayerID: playerID, Cell: cellIndex,
		Message: fmt.Sprintf("%s lifted the mortgage on %s", game.Player(playerID).Name, c.board.Cell(cellIndex).Name),
	})
	return c.save(ctx, game)
}

// ProposeTrade registers a trade offer from the active player
func (c *Controller) ProposeTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID, offer model.TradeOffer) error {
	game, err := c.assetCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	offer.From = playerID
	if err := c.tradeService.Propose(game, &offer); err != nil {
		return err
	}

	c.emit(model.Event{
		Type: model.EventTradeOffered, GameID: game.ID, PlayerID: playerID, Cell: -1,
		Message: fmt.Sprintf("%s offered a trade to %s",
			game.Player(playerID).Name, game.Player(offer.To).Name),
	})
	return c.save(ctx, game)
}

// AcceptTrade applies the pending offer atomically. It is the one command
// open to a player other than the active one: the recipient may respond
// between the active player's commands at any time while the offer stands.
func (c *Controller) AcceptTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.recipientCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	if err := c.tradeService.Accept(game, playerID); err != nil {
		// A stale offer is discarded; persist the discard
		if errors.Is(err, model.ErrTradeStale) {
			_ = c.save(ctx, game)
		}
		return err
	}

	c.emit(model.Event{
		Type: model.EventTradeClosed, GameID: game.ID, PlayerID: playerID, Cell: -1,
		Message: fmt.Sprintf("%s accepted the trade", game.Player(playerID).Name),
	})
	return c.save(ctx, game)
}

// RejectTrade discards the pending offer with no state change
func (c *Controller) RejectTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.recipientCommand(ctx, gameID, playerID)
	if err != nil {
		return err
	}

	if err := c.tradeService.Reject(game, playerID); err != nil {
		return err
	}

	c.emit(model.Event{
		Type: model.EventTradeClosed, GameID: game.ID, PlayerID: playerID, Cell: -1,
		Message: fmt.Sprintf("%s rejected the trade", game.Player(playerID).Name),
	})
	return c.save(ctx, game)
}

// recipientCommand validates a trade response, which is not bound to the
// active player's phase machine
func (c *Controller) recipientCommand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Over() {
		return nil, model.ErrGameOver
	}
	player := game.Player(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if player.IsBankrupt {
		return nil, model.ErrPlayerBankrupt
	}
	return game, nil
}
