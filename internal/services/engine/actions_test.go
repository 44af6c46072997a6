package engine

import (
	"github.com/atherden/boardwalk/internal/model"
)

func (s *EngineSuite) allowed(id model.GameID, player model.PlayerID) []model.ActionType {
	actions, err := s.controller.AllowedActions(s.ctx, id, player)
	s.Require().NoError(err)
	return actions
}

func (s *EngineSuite) TestAllowedActionsAtTurnStart() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	actions := s.allowed(id, 0)
	s.Contains(actions, model.ActionRollDice)
	s.Contains(actions, model.ActionProposeTrade)
	s.Contains(actions, model.ActionDeclareBankrupt)
	s.NotContains(actions, model.ActionEndTurn)

	// The waiting player has nothing to do
	s.Empty(s.allowed(id, 1))
}

func (s *EngineSuite) TestAllowedActionsWithPendingBuy() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 1, 2))

	actions := s.allowed(id, 0)
	s.Contains(actions, model.ActionBuyProperty)
	s.Contains(actions, model.ActionSkipProperty)
	s.NotContains(actions, model.ActionRollDice)
	s.NotContains(actions, model.ActionEndTurn)
}

func (s *EngineSuite) TestAllowedActionsPendingBuyUnaffordable() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Players[0].Cash = 60
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 1, 2))

	actions := s.allowed(id, 0)
	s.Contains(actions, model.ActionSkipProperty)
	s.NotContains(actions, model.ActionBuyProperty)
}

func (s *EngineSuite) TestAllowedActionsWithPendingCard() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 3, 4))

	s.Equal([]model.ActionType{model.ActionAcknowledgeCard}, s.allowed(id, 0))
}

func (s *EngineSuite) TestAllowedActionsAfterDecision() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 1, 2))
	s.Require().NoError(s.controller.SkipProperty(s.ctx, id, 0))

	actions := s.allowed(id, 0)
	s.Contains(actions, model.ActionEndTurn)
	s.NotContains(actions, model.ActionRollDice)
}

func (s *EngineSuite) TestAllowedActionsInJail() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	actions := s.allowed(id, 0)
	s.Contains(actions, model.ActionPayBail)
	s.Contains(actions, model.ActionStayInJail)
	s.NotContains(actions, model.ActionRollDice)
	s.NotContains(actions, model.ActionUseJailFreeCard)

	game := s.game(id)
	game.Players[0].HasJailFreeCard = true
	game.Players[0].Cash = 10
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	actions = s.allowed(id, 0)
	s.Contains(actions, model.ActionUseJailFreeCard)
	s.NotContains(actions, model.ActionPayBail)
}

func (s *EngineSuite) TestAllowedActionsForTradeRecipient() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
	}))

	actions := s.allowed(id, 1)
	s.Contains(actions, model.ActionAcceptTrade)
	s.Contains(actions, model.ActionRejectTrade)

	// The proposer cannot propose another while one is pending
	s.NotContains(s.allowed(id, 0), model.ActionProposeTrade)
}

func (s *EngineSuite) TestAllowedActionsReflectHoldings() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	game := s.game(id)
	game.Houses[1] = 1
	game.Mortgaged[3] = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	actions := s.allowed(id, 0)
	s.Contains(actions, model.ActionBuildHouse)
	s.Contains(actions, model.ActionSellHouse)
	s.Contains(actions, model.ActionUnmortgage)
}

func (s *EngineSuite) TestAllowedActionsEmptyWhenOverOrBankrupt() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	s.Empty(s.allowed(id, 0))
	s.Empty(s.allowed(id, 1))
}

func (s *EngineSuite) TestAllowedActionsUnknownPlayer() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	_, err := s.controller.AllowedActions(s.ctx, id, 9)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
