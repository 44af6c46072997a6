package engine

import (
	"github.com/atherden/boardwalk/internal/model"
)

// jailPlayer puts the given player in jail with a full countdown
func (s *EngineSuite) jailPlayer(id model.GameID, idx int) {
	game := s.game(id)
	game.Players[idx].InJail = true
	game.Players[idx].JailTurnsLeft = 3
	game.Players[idx].Position = 10
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
}

func (s *EngineSuite) TestRollingWhileInJailRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	err := s.roll(id, 0, 1, 2)
	s.ErrorIs(err, model.ErrInJail)
}

func (s *EngineSuite) TestPayBailReleasesAndConsumesTurn() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	s.Require().NoError(s.controller.PayBail(s.ctx, id, 0))

	game := s.game(id)
	player := game.Players[0]
	s.False(player.InJail)
	s.Equal(1450, player.Cash)
	s.Equal(0, player.JailTurnsLeft)
	s.True(game.RolledThisTurn)
	s.Equal(model.PhasePostDecision, game.Phase)

	// No roll happens on a jail turn
	err := s.roll(id, 0, 1, 2)
	s.ErrorIs(err, model.ErrWrongPhase)
	s.Require().NoError(s.controller.EndTurn(s.ctx, id, 0))
}

func (s *EngineSuite) TestPayBailRequiresCash() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	game := s.game(id)
	game.Players[0].Cash = 49
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.PayBail(s.ctx, id, 0)
	s.ErrorIs(err, model.ErrInsufficientFunds)
	s.True(s.game(id).Players[0].InJail)
}

func (s *EngineSuite) TestUseJailFreeCard() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	game := s.game(id)
	game.Players[0].HasJailFreeCard = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.UseJailFreeCard(s.ctx, id, 0))

	game = s.game(id)
	player := game.Players[0]
	s.False(player.InJail)
	s.False(player.HasJailFreeCard)
	s.Equal(1500, player.Cash)
	s.Equal(model.PhasePostDecision, game.Phase)
}

func (s *EngineSuite) TestUseJailFreeCardWithoutCardRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	err := s.controller.UseJailFreeCard(s.ctx, id, 0)
	s.ErrorIs(err, model.ErrNoJailCard)
}

func (s *EngineSuite) TestStayInJailCountsDownToFreeRelease() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 0)

	for turn := 0; turn < 2; turn++ {
		s.Require().NoError(s.controller.StayInJail(s.ctx, id, 0))
		s.True(s.game(id).Players[0].InJail)
		s.giveTurnTo(id, 0)
	}

	// The final forced stay releases without charging
	s.Require().NoError(s.controller.StayInJail(s.ctx, id, 0))

	game := s.game(id)
	player := game.Players[0]
	s.False(player.InJail)
	s.Equal(0, player.JailTurnsLeft)
	s.Equal(1500, player.Cash)
}

func (s *EngineSuite) TestJailCommandsRequireJail() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.ErrorIs(s.controller.PayBail(s.ctx, id, 0), model.ErrNotInJail)
	s.ErrorIs(s.controller.StayInJail(s.ctx, id, 0), model.ErrNotInJail)
	s.ErrorIs(s.controller.UseJailFreeCard(s.ctx, id, 0), model.ErrNotInJail)
}

func (s *EngineSuite) TestJailCommandsRequireTurn() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.jailPlayer(id, 1)

	err := s.controller.PayBail(s.ctx, id, 1)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}
