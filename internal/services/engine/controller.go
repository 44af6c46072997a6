package engine

import (
	"context"
	"log/slog"

	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/dependencies/clock"
	"github.com/atherden/boardwalk/internal/dependencies/random"
	"github.com/atherden/boardwalk/internal/model"
	"github.com/atherden/boardwalk/internal/services/deck"
	"github.com/atherden/boardwalk/internal/services/ledger"
	"github.com/atherden/boardwalk/internal/services/rent"
	"github.com/atherden/boardwalk/internal/services/trade"
	"github.com/atherden/boardwalk/internal/storage"
)

// Sink receives narrative events. It is advisory only: sinks never
// influence engine state and may be nil.
type Sink func(model.Event)

// Controller is the composition root of the rules engine. It owns the
// per-turn state machine and serializes every mutating command: load
// state, validate, mutate, save. No command executes for a player other
// than the one the phase machine designates, except the trade recipient's
// accept/reject.
type Controller struct {
	storage      storage.Storage
	board        *board.Board
	rentService  *rent.Service
	ledger       *ledger.Service
	tradeService *trade.Service
	deckService  *deck.Service
	clock        clock.Clock
	random       random.Random
	config       Config
	sink         Sink
	logger       *slog.Logger
}

// NewController creates a new engine Controller
func NewController(
	store storage.Storage,
	b *board.Board,
	rentService *rent.Service,
	ledgerService *ledger.Service,
	tradeService *trade.Service,
	deckService *deck.Service,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	sink Sink,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      store,
		board:        b,
		rentService:  rentService,
		ledger:       ledgerService,
		tradeService: tradeService,
		deckService:  deckService,
		clock:        clk,
		random:       rnd,
		config:       cfg,
		sink:         sink,
		logger:       logger.With(slog.String("component", "engine")),
	}
}

// NewPlayerSpec describes one roster entry at game creation
type NewPlayerSpec struct {
	Name string
	Kind model.PlayerKind
}

// CreateGame initializes a new game with the given roster
func (c *Controller) CreateGame(ctx context.Context, specs []NewPlayerSpec) (*model.Game, error) {
	if len(specs) < 2 {
		return nil, model.ErrNotEnoughPlayers
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))

	players := make([]model.Player, len(specs))
	for i, spec := range specs {
		kind := spec.Kind
		if kind == "" {
			kind = model.PlayerKindHuman
		}
		players[i] = model.Player{
			ID:       model.PlayerID(i),
			Name:     spec.Name,
			Kind:     kind,
			Cash:     c.config.StartingCash,
			Position: board.GoIndex,
		}
	}

	game := &model.Game{
		ID:         gameID,
		Players:    players,
		Ownership:  make(map[int]model.PlayerID),
		Mortgaged:  make(map[int]bool),
		Houses:     make(map[int]int),
		ActiveIdx:  0,
		Phase:      model.PhaseAwaitingRoll,
		PendingBuy: -1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("player_count", len(players)),
	)
	return game.Snapshot(), nil
}

// Snapshot returns a read-only copy of the game state
func (c *Controller) Snapshot(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return game.Snapshot(), nil
}

// WhoseTurn returns the id of the player the phase machine designates
func (c *Controller) WhoseTurn(ctx context.Context, gameID model.GameID) (model.PlayerID, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.NoPlayer, err
	}
	return game.ActivePlayer().ID, nil
}

// CurrentPhase returns the phase the game is resting in
func (c *Controller) CurrentPhase(ctx context.Context, gameID model.GameID) (model.Phase, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}
	return game.Phase, nil
}

// Winner returns the sole remaining player once exactly one remains,
// or NoPlayer while the game is still contested
func (c *Controller) Winner(ctx context.Context, gameID model.GameID) (model.PlayerID, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.NoPlayer, err
	}
	return game.Winner(), nil
}

// activeCommand loads the game and checks that the command is legal for
// the given player right now. Every active-player command goes through it.
func (c *Controller) activeCommand(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
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
	if game.ActivePlayer().ID != playerID {
		return nil, model.ErrNotPlayerTurn
	}
	return game, nil
}

// save stamps and persists the game after a successful mutation
func (c *Controller) save(ctx context.Context, game *model.Game) error {
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// emit reports a narrative event to the sink, if one is attached
func (c *Controller) emit(event model.Event) {
	if c.sink != nil {
		c.sink(event)
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, specs []NewPlayerSpec) (*model.Game, error)
	Snapshot(ctx context.Context, gameID model.GameID) (*model.Game, error)
	WhoseTurn(ctx context.Context, gameID model.GameID) (model.PlayerID, error)
	CurrentPhase(ctx context.Context, gameID model.GameID) (model.Phase, error)
	Winner(ctx context.Context, gameID model.GameID) (model.PlayerID, error)
	AllowedActions(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.ActionType, error)
	RollDice(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (model.DiceRoll, error)
	RollDiceValues(ctx context.Context, gameID model.GameID, playerID model.PlayerID, roll model.DiceRoll) error
	BuyProperty(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	SkipProperty(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	AcknowledgeChanceCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	Mortgage(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error
	Unmortgage(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error
	BuildHouse(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error
	SellHouse(ctx context.Context, gameID model.GameID, playerID model.PlayerID, cellIndex int) error
	ProposeTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID, offer model.TradeOffer) error
	AcceptTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	RejectTrade(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	PayBail(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	UseJailFreeCard(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	StayInJail(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	DeclareBankrupt(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	EndTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
