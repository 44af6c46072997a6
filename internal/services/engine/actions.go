package engine

import (
	"context"

	"github.com/atherden/boardwalk/internal/model"
)

// AllowedActions reports which commands the given player may issue right
// now. Callers (UIs, automated-player collaborators) use it to gate input;
// the command methods re-validate regardless.
func (c *Controller) AllowedActions(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.ActionType, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.Player(playerID)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if game.Over() || player.IsBankrupt {
		return nil, nil
	}

	var allowed []model.ActionType

	// Trade responses are open to the recipient regardless of whose turn it is
	if t := game.PendingTrade; t != nil && t.Status == model.TradeStatusPending && t.To == playerID {
		allowed = append(allowed, model.ActionAcceptTrade, model.ActionRejectTrade)
	}

	if game.ActivePlayer().ID != playerID {
		return allowed, nil
	}

	if game.PendingCard != nil {
		return append(allowed, model.ActionAcknowledgeCard), nil
	}
	if game.PendingBuy >= 0 {
		allowed = append(allowed, model.ActionSkipProperty)
		if player.Cash > c.board.Cell(game.PendingBuy).Price() {
			allowed = append(allowed, model.ActionBuyProperty)
		}
		return allowed, nil
	}

	switch game.Phase {
	case model.PhaseAwaitingRoll:
		if player.InJail {
			if player.HasJailFreeCard {
				allowed = append(allowed, model.ActionUseJailFreeCard)
			}
			if player.Cash >= c.config.Bail {
				allowed = append(allowed, model.ActionPayBail)
			}
			allowed = append(allowed, model.ActionStayInJail)
		} else {
			allowed = append(allowed, model.ActionRollDice)
		}
		allowed = append(allowed, c.assetActions(game, playerID)...)

	case model.PhasePostDecision:
		allowed = append(allowed, model.ActionEndTurn)
		allowed = append(allowed, c.assetActions(game, playerID)...)
	}

	return allowed, nil
}

// assetActions lists the asset-management actions the player has at
// least one legal target for, plus the always-available declarations
func (c *Controller) assetActions(game *model.Game, playerID model.PlayerID) []model.ActionType {
	var (
		canBuild, canSell, canMortgage, canUnmortgage bool
	)

	for _, idx := range game.CellsOwnedBy(playerID) {
		cell := c.board.Cell(idx)
		houses := game.HousesOn(idx)
		mortgaged := game.Mortgaged[idx]

		if cell.Type == model.CellStreet && !mortgaged && houses < model.HotelCount {
			canBuild = true
		}
		if houses > 0 {
			canSell = true
		}
		if !mortgaged && houses == 0 {
			canMortgage = true
		}
		if mortgaged {
			canUnmortgage = true
		}
	}

	var out []model.ActionType
	if canBuild {
		out = append(out, model.ActionBuildHouse)
	}
	if canSell {
		out = append(out, model.ActionSellHouse)
	}
	if canMortgage {
		out = append(out, model.ActionMortgage)
	}
	if canUnmortgage {
		out = append(out, model.ActionUnmortgage)
	}
	if game.PendingTrade == nil {
		out = append(out, model.ActionProposeTrade)
	}
	out = append(out, model.ActionDeclareBankrupt)
	return out
}
