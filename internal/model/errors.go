package model

import "errors"

// Common errors used across the application
var (
	// Game lookup and creation
	ErrGameNotFound     = errors.New("game not found")
	ErrGameOver         = errors.New("game is already over")
	ErrNotEnoughPlayers = errors.New("at least two players are required")

	// Invalid action: wrong phase or wrong acting player
	ErrNotPlayerTurn     = errors.New("not this player's turn")
	ErrWrongPhase        = errors.New("action not legal in the current phase")
	ErrAlreadyRolled     = errors.New("dice already rolled this turn")
	ErrRollRequired      = errors.New("the active player has not rolled yet")
	ErrDecisionPending   = errors.New("a landing decision is still pending")
	ErrNoDecisionPending = errors.New("no landing decision is pending")
	ErrPlayerBankrupt    = errors.New("player is bankrupt")
	ErrPlayerNotFound    = errors.New("player not found")

	// Rolls
	ErrInvalidDice = errors.New("dice values must be between 1 and 6")

	// Jail
	ErrInJail     = errors.New("player is in jail")
	ErrNotInJail  = errors.New("player is not in jail")
	ErrNoJailCard = errors.New("player holds no get-out-of-jail card")

	// Purchases, mortgages, bail
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCellNotOwnable    = errors.New("cell cannot be owned")
	ErrCellOwned         = errors.New("cell is already owned")
	ErrNotOwner          = errors.New("player does not own this cell")
	ErrMortgaged         = errors.New("cell is mortgaged")
	ErrNotMortgaged      = errors.New("cell is not mortgaged")

	// Improvements
	ErrNotAStreet           = errors.New("cell is not a street")
	ErrIncompleteColorGroup = errors.New("player does not own the full color group")
	ErrUnevenBuild          = errors.New("build would break the even-build rule")
	ErrHotelCap             = errors.New("cell already carries a hotel")
	ErrNoHouses             = errors.New("no houses to sell on this cell")
	ErrHasHouses            = errors.New("cell still carries houses")

	// Trades
	ErrTradePending      = errors.New("another trade offer is already pending")
	ErrNoTradePending    = errors.New("no trade offer is pending")
	ErrNotTradeRecipient = errors.New("player is not the trade recipient")
	ErrTradeWithSelf     = errors.New("cannot trade with yourself")
	ErrTradeStale        = errors.New("trade offer is no longer valid")
)

// The sentinels above fall into four families; these helpers classify an
// error for callers that only care about the family.

// IsInvalidAction reports a wrong-phase or wrong-player rejection
func IsInvalidAction(err error) bool {
	for _, target := range []error{
		ErrNotPlayerTurn, ErrWrongPhase, ErrAlreadyRolled, ErrRollRequired,
		ErrDecisionPending, ErrNoDecisionPending, ErrPlayerBankrupt,
		ErrInJail, ErrNotInJail, ErrNoJailCard, ErrGameOver,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsIllegalTrade reports a trade rejected for staleness or constraint violations
func IsIllegalTrade(err error) bool {
	for _, target := range []error{
		ErrTradePending, ErrNoTradePending, ErrNotTradeRecipient,
		ErrTradeWithSelf, ErrTradeStale,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsIllegalImprovement reports a build/sell/mortgage rejection
func IsIllegalImprovement(err error) bool {
	for _, target := range []error{
		ErrNotAStreet, ErrIncompleteColorGroup, ErrUnevenBuild,
		ErrHotelCap, ErrNoHouses, ErrHasHouses, ErrMortgaged, ErrNotMortgaged,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
