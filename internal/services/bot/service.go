package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atherden/boardwalk/internal/model"
	"github.com/atherden/boardwalk/internal/services/engine"
)

// maxDecisionResolutions bounds the cleanup loop that resolves decisions
// a strategy left pending (chained card draws can stack several)
const maxDecisionResolutions = 20

// Service drives automated players' turns through the engine's command
// surface. A turn runs to completion once started: pre-roll intents, one
// roll, post-roll intents, then end of turn. Any suggested action the
// engine rejects is dropped and the runner falls back to ending the turn,
// so a misbehaving strategy cannot stall the game.
type Service struct {
	controller engine.ControllerInterface
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(controller engine.ControllerInterface, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// ExecutedAction records one command the runner issued on a bot's behalf
type ExecutedAction struct {
	Action   model.Action
	Rejected bool
}

// PlayTurn runs the active automated player's whole turn. It returns the
// actions it executed so callers can report them. Calling it when the
// active player is human is an error.
func (s *Service) PlayTurn(ctx context.Context, gameID model.GameID, strategyName string) ([]ExecutedAction, error) {
	snapshot, err := s.controller.Snapshot(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if snapshot.Over() {
		return nil, model.ErrGameOver
	}

	player := snapshot.ActivePlayer()
	if player.Kind != model.PlayerKindAutomated {
		return nil, model.ErrNotPlayerTurn
	}

	strategy, err := s.strategyByName(strategyName)
	if err != nil {
		return nil, err
	}

	playerID := player.ID
	decision := strategy.Decide(snapshot, playerID)

	var executed []ExecutedAction
	abort := false

	for _, action := range decision.PreRollActions {
		if abort {
			break
		}
		executed, abort = s.execute(ctx, gameID, playerID, action, executed)
	}

	if !abort {
		executed, abort = s.runRoll(ctx, gameID, playerID, decision.Roll, executed)
	}

	if !abort {
		for _, action := range decision.PostRollActions {
			snapshot, err = s.controller.Snapshot(ctx, gameID)
			if err != nil {
				return executed, err
			}
			if !s.stillRelevant(snapshot, action) {
				continue
			}
			var stop bool
			executed, stop = s.execute(ctx, gameID, playerID, action, executed)
			if stop {
				break
			}
		}
	}

	if err := s.finishTurn(ctx, gameID, playerID); err != nil {
		return executed, err
	}
	return executed, nil
}

// RespondToTrade lets an automated player answer a pending offer
// directed at it while another player holds the turn. The response
// interleaves between the active player's commands, never during them.
func (s *Service) RespondToTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID, strategyName string) (*ExecutedAction, error) {
	snapshot, err := s.controller.Snapshot(ctx, gameID)
	if err != nil {
		return nil, err
	}

	t := snapshot.PendingTrade
	if t == nil || t.Status != model.TradeStatusPending || t.To != playerID {
		return nil, model.ErrNoTradePending
	}
	if snapshot.Player(playerID).Kind != model.PlayerKindAutomated {
		return nil, model.ErrNotTradeRecipient
	}

	strategy, err := s.strategyByName(strategyName)
	if err != nil {
		return nil, err
	}

	// The strategy surfaces its trade response as the leading intent of
	// its plan for the snapshot
	for _, action := range strategy.Decide(snapshot, playerID).PreRollActions {
		if action.Type != model.ActionAcceptTrade && action.Type != model.ActionRejectTrade {
			continue
		}
		executed, _ := s.execute(ctx, gameID, playerID, action, nil)
		return &executed[0], nil
	}

	// No opinion: reject rather than leave the offer blocking
	executed, _ := s.execute(ctx, gameID, playerID, model.Action{Type: model.ActionRejectTrade}, nil)
	return &executed[0], nil
}

// runRoll consumes the turn: supplied dice pass through verbatim, and a
// missing roll degrades to a forced jail stay or an engine-generated roll
func (s *Service) runRoll(ctx context.Context, gameID model.GameID, playerID model.PlayerID, roll *model.DiceRoll, executed []ExecutedAction) ([]ExecutedAction, bool) {
	snapshot, err := s.controller.Snapshot(ctx, gameID)
	if err != nil {
		return executed, true
	}
	if snapshot.RolledThisTurn || snapshot.Phase != model.PhaseAwaitingRoll {
		return executed, false
	}

	if snapshot.ActivePlayer().InJail {
		return s.execute(ctx, gameID, playerID, model.Action{Type: model.ActionStayInJail}, executed)
	}
	if roll != nil {
		if err := s.controller.RollDiceValues(ctx, gameID, playerID, *roll); err == nil {
			executed = append(executed, ExecutedAction{Action: model.Action{Type: model.ActionRollDice}})
			return executed, false
		}
	}
	return s.execute(ctx, gameID, playerID, model.Action{Type: model.ActionRollDice}, executed)
}

// finishTurn resolves anything still pending and ends the turn
func (s *Service) finishTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	for i := 0; i < maxDecisionResolutions; i++ {
		snapshot, err := s.controller.Snapshot(ctx, gameID)
		if err != nil {
			return err
		}
		if snapshot.Over() || snapshot.ActivePlayer().ID != playerID {
			return nil
		}

		switch {
		case snapshot.PendingCard != nil:
			err = s.controller.AcknowledgeChanceCard(ctx, gameID, playerID)
		case snapshot.PendingBuy >= 0:
			err = s.controller.SkipProperty(ctx, gameID, playerID)
		default:
			return s.controller.EndTurn(ctx, gameID, playerID)
		}
		if err != nil {
			return err
		}
	}
	return fmt.Errorf("bot turn did not settle after %d resolutions", maxDecisionResolutions)
}

// execute issues one command; rejections are logged and reported, never fatal
func (s *Service) execute(ctx context.Context, gameID model.GameID, playerID model.PlayerID, action model.Action, executed []ExecutedAction) ([]ExecutedAction, bool) {
	var err error
	switch action.Type {
	case model.ActionRollDice:
		_, err = s.controller.RollDice(ctx, gameID, playerID)
	case model.ActionBuyProperty:
		err = s.controller.BuyProperty(ctx, gameID, playerID)
	case model.ActionSkipProperty:
		err = s.controller.SkipProperty(ctx, gameID, playerID)
	case model.ActionAcknowledgeCard:
		err = s.controller.AcknowledgeChanceCard(ctx, gameID, playerID)
	case model.ActionMortgage:
		err = s.controller.Mortgage(ctx, gameID, playerID, action.Cell)
	case model.ActionUnmortgage:
		err = s.controller.Unmortgage(ctx, gameID, playerID, action.Cell)
	case model.ActionBuildHouse:
		err = s.controller.BuildHouse(ctx, gameID, playerID, action.Cell)
	case model.ActionSellHouse:
		err = s.controller.SellHouse(ctx, gameID, playerID, action.Cell)
	case model.ActionProposeTrade:
		if action.Trade == nil {
			err = model.ErrNoTradePending
		} else {
			err = s.controller.ProposeTrade(ctx, gameID, playerID, *action.Trade)
		}
	case model.ActionAcceptTrade:
		err = s.controller.AcceptTrade(ctx, gameID, playerID)
	case model.ActionRejectTrade:
		err = s.controller.RejectTrade(ctx, gameID, playerID)
	case model.ActionPayBail:
		err = s.controller.PayBail(ctx, gameID, playerID)
	case model.ActionUseJailFreeCard:
		err = s.controller.UseJailFreeCard(ctx, gameID, playerID)
	case model.ActionStayInJail:
		err = s.controller.StayInJail(ctx, gameID, playerID)
	case model.ActionDeclareBankrupt:
		err = s.controller.DeclareBankrupt(ctx, gameID, playerID)
	case model.ActionEndTurn:
		err = s.controller.EndTurn(ctx, gameID, playerID)
	default:
		err = model.ErrWrongPhase
	}

	if err != nil {
		// Silently downgraded: the rejected suggestion is recorded and the
		// runner proceeds toward ending the turn
		s.logger.Debug("bot action rejected",
			slog.String("game_id", string(gameID)),
			slog.Int("player", int(playerID)),
			slog.String("action", string(action.Type)),
			slog.String("error", err.Error()),
		)
		executed = append(executed, ExecutedAction{Action: action, Rejected: true})
		return executed, false
	}

	executed = append(executed, ExecutedAction{Action: action})
	return executed, false
}

// stillRelevant filters planned post-roll actions against what actually
// ended up pending after the roll
func (s *Service) stillRelevant(snapshot *model.Game, action model.Action) bool {
	switch action.Type {
	case model.ActionBuyProperty, model.ActionSkipProperty:
		return snapshot.PendingBuy >= 0
	case model.ActionAcknowledgeCard:
		return snapshot.PendingCard != nil
	}
	return true
}

func (s *Service) strategyByName(name string) (Strategy, error) {
	if strategy, ok := s.strategies[name]; ok {
		return strategy, nil
	}
	// Fallback: use the first registered strategy
	for _, strategy := range s.strategies {
		return strategy, nil
	}
	return nil, fmt.Errorf("no bot strategies registered")
}
