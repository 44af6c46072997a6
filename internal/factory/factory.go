package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/atherden/boardwalk/internal/board"
	"github.com/atherden/boardwalk/internal/dependencies/clock"
	"github.com/atherden/boardwalk/internal/dependencies/random"
	"github.com/atherden/boardwalk/internal/services/bot"
	"github.com/atherden/boardwalk/internal/services/deck"
	"github.com/atherden/boardwalk/internal/services/engine"
	"github.com/atherden/boardwalk/internal/services/ledger"
	"github.com/atherden/boardwalk/internal/services/rent"
	"github.com/atherden/boardwalk/internal/services/trade"
	"github.com/atherden/boardwalk/internal/storage"
	"github.com/atherden/boardwalk/internal/storage/memory"
	redisstorage "github.com/atherden/boardwalk/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Board          *board.Board
	RentService    *rent.Service
	LedgerService  *ledger.Service
	TradeService   *trade.Service
	DeckService    *deck.Service
	GameController *engine.Controller
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// EngineConfig holds game rule settings (optional)
	// If zero value, defaults to engine.DefaultConfig()
	EngineConfig engine.Config
	// Sink receives game events as they occur (optional)
	Sink engine.Sink
	// Random overrides the random source (optional, used for seeded simulations)
	Random random.Random
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}

	// Use default engine config if not provided
	engineCfg := cfg.EngineConfig
	if engineCfg.StartingCash == 0 {
		engineCfg = engine.DefaultConfig()
	}

	app, err := newWithDependencies(store, clk, rnd, engineCfg, cfg.Sink, logger)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, engineCfg engine.Config, sink engine.Sink, logger *slog.Logger) (*App, error) {
	gameBoard, err := board.Standard()
	if err != nil {
		return nil, err
	}

	// Create services
	rentService := rent.New(gameBoard)
	ledgerService := ledger.New(gameBoard, logger)
	tradeService := trade.New(gameBoard, logger)
	deckService := deck.New()
	gameController := engine.NewController(store, gameBoard, rentService, ledgerService, tradeService, deckService, clk, rnd, engineCfg, sink, logger)

	strategies := map[string]bot.Strategy{
		bot.StrategyGreedy: bot.NewGreedyStrategy(gameBoard, rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Board:          gameBoard,
		RentService:    rentService,
		LedgerService:  ledgerService,
		TradeService:   tradeService,
		DeckService:    deckService,
		GameController: gameController,
		BotService:     botService,
	}, nil
}
