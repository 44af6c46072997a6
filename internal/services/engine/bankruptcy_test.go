package engine

import (
	"github.com/atherden/boardwalk/internal/model"
)

func (s *EngineSuite) TestDeclareBankruptReturnsAssetsToBank() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	game.Ownership[3] = 0
	game.Mortgaged[3] = true
	game.Houses[1] = 2
	game.Players[0].Cash = -120
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	game = s.game(id)
	player := game.Players[0]
	s.True(player.IsBankrupt)
	s.Equal(0, player.Cash)
	s.Equal(model.NoPlayer, game.OwnerOf(1))
	s.Equal(model.NoPlayer, game.OwnerOf(3))
	s.False(game.Mortgaged[3])
	s.Equal(0, game.HousesOn(1))

	// The turn advanced to the next player
	s.Equal(1, game.ActiveIdx)
	s.Equal(model.PhaseAwaitingRoll, game.Phase)
	s.Contains(s.eventTypes(), model.EventEliminated)
}

func (s *EngineSuite) TestBankruptcyClearsPendingDecisions() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 1, 2))
	s.Equal(3, s.game(id).PendingBuy)

	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	game := s.game(id)
	s.Equal(-1, game.PendingBuy)
	s.Nil(game.PendingCard)
}

func (s *EngineSuite) TestBankruptcyClearsTradeInvolvingPlayer() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
		TakeCash:       100,
	}))
	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	s.Nil(s.game(id).PendingTrade)
}

func (s *EngineSuite) TestLastOpponentBankruptcyEndsGame() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	game := s.game(id)
	s.True(game.Over())
	s.Equal(model.PlayerID(1), game.Winner())
	s.Contains(s.eventTypes(), model.EventGameWon)

	winner, err := s.controller.Winner(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(1), winner)
}

func (s *EngineSuite) TestCommandsRejectedAfterGameOver() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	err := s.roll(id, 1, 1, 2)
	s.ErrorIs(err, model.ErrGameOver)
	s.ErrorIs(s.controller.EndTurn(s.ctx, id, 1), model.ErrGameOver)
}

func (s *EngineSuite) TestBankruptPlayerCannotAct() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.controller.DeclareBankrupt(s.ctx, id, 0))

	err := s.roll(id, 0, 1, 2)
	s.ErrorIs(err, model.ErrPlayerBankrupt)
}

func (s *EngineSuite) TestBankruptcyOutOfTurnRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	err := s.controller.DeclareBankrupt(s.ctx, id, 1)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}
