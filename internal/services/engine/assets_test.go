package engine

import (
	"github.com/atherden/boardwalk/internal/model"
)

// ownBrownGroup gives the player both brown streets
func (s *EngineSuite) ownBrownGroup(id model.GameID, player model.PlayerID) {
	game := s.game(id)
	game.Ownership[1] = player
	game.Ownership[3] = player
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
}

func (s *EngineSuite) TestBuildHouseOnMonopoly() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	s.Require().NoError(s.controller.BuildHouse(s.ctx, id, 0, 1))

	game := s.game(id)
	s.Equal(1, game.HousesOn(1))
	s.Equal(1450, game.Players[0].Cash)
	s.Contains(s.eventTypes(), model.EventBuilt)
}

func (s *EngineSuite) TestBuildRequiresFullGroup() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.BuildHouse(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrIncompleteColorGroup)
}

func (s *EngineSuite) TestBuildEnforcesEvenDistribution() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	s.Require().NoError(s.controller.BuildHouse(s.ctx, id, 0, 1))

	// A second house on the same street would leave the group at [2, 0]
	err := s.controller.BuildHouse(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrUnevenBuild)

	// Building on the other street first is legal
	s.Require().NoError(s.controller.BuildHouse(s.ctx, id, 0, 3))
	s.Require().NoError(s.controller.BuildHouse(s.ctx, id, 0, 1))
}

func (s *EngineSuite) TestBuildCapsAtHotel() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	game := s.game(id)
	game.Houses[1] = 5
	game.Houses[3] = 5
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.BuildHouse(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrHotelCap)
}

func (s *EngineSuite) TestBuildDuringPendingDecisionRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	s.Require().NoError(s.roll(id, 0, 2, 3)) // railroad, buy pending

	err := s.controller.BuildHouse(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrDecisionPending)
}

func (s *EngineSuite) TestSellHouseCreditsHalfCost() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	game := s.game(id)
	game.Houses[1] = 1
	game.Houses[3] = 1
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.SellHouse(s.ctx, id, 0, 1))

	game = s.game(id)
	s.Equal(0, game.HousesOn(1))
	s.Equal(1525, game.Players[0].Cash)
}

func (s *EngineSuite) TestSellEnforcesEvenDistribution() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	game := s.game(id)
	game.Houses[1] = 1
	game.Houses[3] = 2
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.SellHouse(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrUnevenBuild)

	s.Require().NoError(s.controller.SellHouse(s.ctx, id, 0, 3))
}

func (s *EngineSuite) TestMortgageAndUnmortgage() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[5] = 0 // Reading Railroad, mortgage value 100
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.Mortgage(s.ctx, id, 0, 5))

	game = s.game(id)
	s.True(game.Mortgaged[5])
	s.Equal(1600, game.Players[0].Cash)

	// Lifting costs the value plus 10% interest
	s.Require().NoError(s.controller.Unmortgage(s.ctx, id, 0, 5))

	game = s.game(id)
	s.False(game.Mortgaged[5])
	s.Equal(1490, game.Players[0].Cash)
}

func (s *EngineSuite) TestMortgageWithHousesRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	game := s.game(id)
	game.Houses[1] = 1
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.Mortgage(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrHasHouses)
}

func (s *EngineSuite) TestMortgageNotOwnedRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	err := s.controller.Mortgage(s.ctx, id, 0, 5)
	s.ErrorIs(err, model.ErrNotOwner)
}

func (s *EngineSuite) TestBuildOnMortgagedStreetRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)
	s.ownBrownGroup(id, 0)

	game := s.game(id)
	game.Mortgaged[1] = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	err := s.controller.BuildHouse(s.ctx, id, 0, 1)
	s.ErrorIs(err, model.ErrMortgaged)
}

// Trades

func (s *EngineSuite) TestTradeLifecycle() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	game.Ownership[5] = 1
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
		TakeProperties: []int{5},
		GiveCash:       50,
	}))

	game = s.game(id)
	s.Require().NotNil(game.PendingTrade)
	s.Equal(model.TradeStatusPending, game.PendingTrade.Status)

	// The recipient responds out of turn
	s.Require().NoError(s.controller.AcceptTrade(s.ctx, id, 1))

	game = s.game(id)
	s.Nil(game.PendingTrade)
	s.Equal(model.PlayerID(1), game.OwnerOf(1))
	s.Equal(model.PlayerID(0), game.OwnerOf(5))
	s.Equal(1450, game.Players[0].Cash)
	s.Equal(1550, game.Players[1].Cash)
}

func (s *EngineSuite) TestTradeRejectLeavesStateUntouched() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
		TakeCash:       100,
	}))
	s.Require().NoError(s.controller.RejectTrade(s.ctx, id, 1))

	game = s.game(id)
	s.Nil(game.PendingTrade)
	s.Equal(model.PlayerID(0), game.OwnerOf(1))
	s.Equal(1500, game.Players[0].Cash)
}

func (s *EngineSuite) TestTradeAcceptByNonRecipientRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
	}))

	err := s.controller.AcceptTrade(s.ctx, id, 2)
	s.ErrorIs(err, model.ErrNotTradeRecipient)
}

func (s *EngineSuite) TestStaleTradeDiscardedOnAccept() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
	}))

	// The proposer mortgages the offered street before the response
	s.Require().NoError(s.controller.Mortgage(s.ctx, id, 0, 1))

	err := s.controller.AcceptTrade(s.ctx, id, 1)
	s.ErrorIs(err, model.ErrTradeStale)

	game = s.game(id)
	s.Nil(game.PendingTrade)
	s.Equal(model.PlayerID(0), game.OwnerOf(1))
}

func (s *EngineSuite) TestSecondTradeWhilePendingRejected() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
	}))

	err := s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{To: 1, GiveCash: 10})
	s.ErrorIs(err, model.ErrTradePending)
}

func (s *EngineSuite) TestEndTurnClearsUnresolvedTrade() {
	id := s.createGame(model.PlayerKindHuman, model.PlayerKindHuman)

	game := s.game(id)
	game.Ownership[1] = 0
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.controller.ProposeTrade(s.ctx, id, 0, model.TradeOffer{
		To:             1,
		GiveProperties: []int{1},
	}))
	s.Require().NoError(s.roll(id, 0, 2, 3)) // railroad, buy pending
	s.Require().NoError(s.controller.SkipProperty(s.ctx, id, 0))
	s.Require().NoError(s.controller.EndTurn(s.ctx, id, 0))

	s.Nil(s.game(id).PendingTrade)
}
