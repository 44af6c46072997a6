package trade

import (
	"log/slog"

	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/model"
)

// Service validates and atomically executes property/cash exchanges
// between two players. At most one offer is pending per game; it is
// created by the active player and resolved by the recipient.
type Service struct {
	board  *board.Board
	logger *slog.Logger
}

// New creates a new trade negotiator
func New(b *board.Board, logger *slog.Logger) *Service {
	return &Service{
		board:  b,
		logger: logger.With(slog.String("component", "trade")),
	}
}

// Propose registers a pending offer from the active player
func (s *Service) Propose(game *model.Game, offer *model.TradeOffer) error {
	if game.PendingTrade != nil && game.PendingTrade.Status == model.TradeStatusPending {
		return model.ErrTradePending
	}
	if offer.From == offer.To {
		return model.ErrTradeWithSelf
	}
	to := game.Player(offer.To)
	if to == nil {
		return model.ErrPlayerNotFound
	}
	if to.IsBankrupt {
		return model.ErrPlayerBankrupt
	}

	if err := s.validateLegs(game, offer); err != nil {
		return err
	}

	pending := offer.Clone()
	pending.Status = model.TradeStatusPending
	game.PendingTrade = pending

	s.logger.Info("trade proposed",
		slog.String("game_id", string(game.ID)),
		slog.Int("from", int(offer.From)),
		slog.Int("to", int(offer.To)),
	)
	return nil
}

// Accept applies both legs of the pending offer atomically. If any leg
// has gone stale since the proposal, nothing changes and the offer is
// discarded as rejected.
func (s *Service) Accept(game *model.Game, playerID model.PlayerID) error {
	offer := game.PendingTrade
	if offer == nil || offer.Status != model.TradeStatusPending {
		return model.ErrNoTradePending
	}
	if offer.To != playerID {
		return model.ErrNotTradeRecipient
	}

	// Full revalidation before any mutation: accept is all-or-nothing
	if err := s.validateLegs(game, offer); err != nil {
		offer.Status = model.TradeStatusRejected
		game.PendingTrade = nil
		return model.ErrTradeStale
	}

	from := game.Player(offer.From)
	to := game.Player(offer.To)

	for _, idx := range offer.GiveProperties {
		game.Ownership[idx] = offer.To
	}
	for _, idx := range offer.TakeProperties {
		game.Ownership[idx] = offer.From
	}
	from.Cash += offer.TakeCash - offer.GiveCash
	to.Cash += offer.GiveCash - offer.TakeCash

	offer.Status = model.TradeStatusAccepted
	game.PendingTrade = nil

	s.logger.Info("trade accepted",
		slog.String("game_id", string(game.ID)),
		slog.Int("from", int(offer.From)),
		slog.Int("to", int(offer.To)),
		slog.Int("properties", len(offer.GiveProperties)+len(offer.TakeProperties)),
	)
	return nil
}

// Reject discards the pending offer with no state change
func (s *Service) Reject(game *model.Game, playerID model.PlayerID) error {
	offer := game.PendingTrade
	if offer == nil || offer.Status != model.TradeStatusPending {
		return model.ErrNoTradePending
	}
	if offer.To != playerID {
		return model.ErrNotTradeRecipient
	}

	offer.Status = model.TradeStatusRejected
	game.PendingTrade = nil
	return nil
}

// validateLegs checks that every listed property is owned by the correct
// side, unmortgaged and unimproved, that each side can cover its cash
// leg, and that neither side is bankrupt
func (s *Service) validateLegs(game *model.Game, offer *model.TradeOffer) error {
	from := game.Player(offer.From)
	to := game.Player(offer.To)
	if from == nil || to == nil {
		return model.ErrPlayerNotFound
	}
	if from.IsBankrupt || to.IsBankrupt {
		return model.ErrPlayerBankrupt
	}
	if from.Cash < offer.GiveCash || to.Cash < offer.TakeCash {
		return model.ErrInsufficientFunds
	}

	if err := s.validateSide(game, offer.From, offer.GiveProperties); err != nil {
		return err
	}
	return s.validateSide(game, offer.To, offer.TakeProperties)
}

func (s *Service) validateSide(game *model.Game, owner model.PlayerID, cells []int) error {
	for _, idx := range cells {
		if idx < 0 || idx >= model.BoardSize || !s.board.Cell(idx).Ownable() {
			return model.ErrCellNotOwnable
		}
		if game.OwnerOf(idx) != owner {
			return model.ErrNotOwner
		}
		if game.Mortgaged[idx] {
			return model.ErrMortgaged
		}
		if game.HousesOn(idx) > 0 {
			return model.ErrHasHouses
		}
	}
	return nil
}
