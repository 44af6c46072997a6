package engine

import (
	"github.com/atherden/boardwalk/internal/model"
)

// Movement

func (s *EngineSuite) TestPassingGoPaysSalaryOnce() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Players[0].Position = 34
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// 34 + 7 wraps to 1, crossing Go exactly once
	s.Require().NoError(s.roll(id, 0, 3, 4))

	game = s.game(id)
	s.Equal(1, game.Players[0].Position)
	s.Equal(1700, game.Players[0].Cash)
	s.Contains(s.eventTypes(), model.EventPassedStart)
}

func (s *EngineSuite) TestLandingExactlyOnGoPaysSalary() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Players[0].Position = 36
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 2, 2))

	game = s.game(id)
	s.Equal(0, game.Players[0].Position)
	s.Equal(1700, game.Players[0].Cash)
}

// Rent

func (s *EngineSuite) TestLandingOnOpponentStreetPaysRent() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[3] = 1 // Baltic Avenue, base rent 4
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 1, 2))

	game = s.game(id)
	s.Equal(1496, game.Players[0].Cash)
	s.Equal(1504, game.Players[1].Cash)
	s.Equal(-1, game.PendingBuy)
	s.Equal(model.PhasePostDecision, game.Phase)
}

func (s *EngineSuite) TestRentUsesHouseTable() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[3] = 1
	game.Houses[3] = 2 // Baltic with two houses rents 60
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 1, 2))

	s.Equal(1440, s.game(id).Players[0].Cash)
}

func (s *EngineSuite) TestLandingOnOwnPropertyChargesNothing() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[3] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 1, 2))

	game = s.game(id)
	s.Equal(1500, game.Players[0].Cash)
	s.Equal(model.PhasePostDecision, game.Phase)
}

func (s *EngineSuite) TestMortgagedPropertyChargesNothing() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[3] = 1
	game.Mortgaged[3] = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 1, 2))

	s.Equal(1500, s.game(id).Players[0].Cash)
	s.Equal(1500, s.game(id).Players[1].Cash)
}

func (s *EngineSuite) TestRailroadRentScalesWithCount() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[5] = 1  // Reading Railroad
	game.Ownership[15] = 1 // Pennsylvania Railroad
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 2, 3))

	// Two railroads owned: 50
	s.Equal(1450, s.game(id).Players[0].Cash)
}

func (s *EngineSuite) TestUtilityRentMultipliesDice() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[12] = 1 // Electric Company
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 6, 6))

	// One utility owned: 4 x dice total
	s.Equal(1500-48, s.game(id).Players[0].Cash)
}

func (s *EngineSuite) TestRentCanDriveCashNegative() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[3] = 1
	game.Houses[3] = 5 // hotel rent 450
	game.Players[0].Cash = 100
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 1, 2))

	game = s.game(id)
	s.Equal(-350, game.Players[0].Cash)
	s.False(game.Players[0].IsBankrupt)
	s.Equal(model.PhasePostDecision, game.Phase)
}

// Tax and go-to-jail cells

func (s *EngineSuite) TestLandingOnIncomeTax() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 1, 3))

	game := s.game(id)
	s.Equal(4, game.Players[0].Position)
	s.Equal(1300, game.Players[0].Cash)
	s.Contains(s.eventTypes(), model.EventTaxPaid)
}

func (s *EngineSuite) TestLandingOnGoToJail() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Players[0].Position = 25
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 2, 3))

	game = s.game(id)
	player := game.Players[0]
	s.True(player.InJail)
	s.Equal(10, player.Position)
	s.Equal(3, player.JailTurnsLeft)
	s.Equal(model.PhasePostDecision, game.Phase)

	// The jailing consumed the turn; it can be ended directly
	s.Require().NoError(s.controller.EndTurn(s.ctx, id, 0))
}

// Cards

func (s *EngineSuite) TestHumanHoldsDrawnCardUntilAcknowledged() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 3, 4)) // cell 7, Chance

	game := s.game(id)
	s.Require().NotNil(game.PendingCard)
	s.Equal(model.DeckChance, game.PendingCard.Deck)
	s.Equal(model.PhaseAwaitingDecision, game.Phase)
	s.Equal(model.DeckCursor(1), game.ChanceCursor)

	// First chance card relocates to Go with no salary
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	game = s.game(id)
	s.Nil(game.PendingCard)
	s.Equal(0, game.Players[0].Position)
	s.Equal(1500, game.Players[0].Cash)
	s.Equal(model.PhasePostDecision, game.Phase)
}

func (s *EngineSuite) TestAcknowledgeWithoutPendingCardRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	err := s.controller.AcknowledgeChanceCard(s.ctx, id, 0)
	s.ErrorIs(err, model.ErrNoDecisionPending)
}

func (s *EngineSuite) TestMoveCardReResolvesLanding() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.ChanceCursor = 6 // "Go back 3 spaces"
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 3, 4))
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	// 7 back to 4 is Income Tax, which resolves immediately
	game = s.game(id)
	s.Equal(4, game.Players[0].Position)
	s.Equal(1300, game.Players[0].Cash)
}

func (s *EngineSuite) TestJailCardSendsToJail() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.ChanceCursor = 7 // "Go to Jail"
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 3, 4))
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	game = s.game(id)
	s.True(game.Players[0].InJail)
	s.Equal(10, game.Players[0].Position)
}

func (s *EngineSuite) TestJailFreeCardIsHeld() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.ChanceCursor = 5 // "Get Out of Jail Free"
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 3, 4))
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	s.True(s.game(id).Players[0].HasJailFreeCard)
}

func (s *EngineSuite) TestPayAllCardSettlesWithEveryOpponent() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.ChanceCursor = 11 // chairman: pay each player 50
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 3, 4))
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	game = s.game(id)
	s.Equal(1400, game.Players[0].Cash)
	s.Equal(1550, game.Players[1].Cash)
	s.Equal(1550, game.Players[2].Cash)
}

func (s *EngineSuite) TestPayPerHouseCardCountsImprovements() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.ChanceCursor = 8 // repairs: 25 per house
	game.Ownership[1] = 0
	game.Ownership[3] = 0
	game.Houses[1] = 3
	game.Houses[3] = 2
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 3, 4))
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	s.Equal(1500-5*25, s.game(id).Players[0].Cash)
}

func (s *EngineSuite) TestAutomatedPlayerCardAppliesImmediately() {
	id := s.createGame(model.PlayerKindAutomated, model.PlayerKindHuman)

	s.Require().NoError(s.roll(id, 0, 3, 4))

	game := s.game(id)
	s.Nil(game.PendingCard)
	// First chance card already moved the bot to Go
	s.Equal(0, game.Players[0].Position)
	s.Equal(model.PhasePostDecision, game.Phase)
}

func (s *EngineSuite) TestDeckCursorCyclesInFixedOrder() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.ChanceCursor = 13 // last card of the deck
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.roll(id, 0, 3, 4))
	s.Require().NoError(s.controller.AcknowledgeChanceCard(s.ctx, id, 0))

	// Cursor wraps: the next draw will be the first card again
	game = s.game(id)
	s.Equal(model.DeckCursor(14), game.ChanceCursor)
	s.Equal(1600, game.Players[0].Cash) // collect 100
}
