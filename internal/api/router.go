package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atherden/boardwalk/internal/api/handler"
	apimiddleware "github.com/atherden/boardwalk/internal/api/middleware"
	"github.com/atherden/boardwalk/internal/middleware"
	"github.com/atherden/boardwalk/internal/services/bot"
	"github.com/atherden/boardwalk/internal/services/engine"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *engine.Controller
	BotService     *bot.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BotService)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)

	games := api.PathPrefix("/games/{id}").Subrouter()
	games.HandleFunc("", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/allowed-actions", gameHandler.AllowedActions).Methods(http.MethodGet)
	games.HandleFunc("/winner", gameHandler.Winner).Methods(http.MethodGet)

	// Turn commands
	games.HandleFunc("/roll", gameHandler.Roll).Methods(http.MethodPost)
	games.HandleFunc("/buy", gameHandler.Buy).Methods(http.MethodPost)
	games.HandleFunc("/skip", gameHandler.Skip).Methods(http.MethodPost)
	games.HandleFunc("/ack-card", gameHandler.AckCard).Methods(http.MethodPost)
	games.HandleFunc("/end-turn", gameHandler.EndTurn).Methods(http.MethodPost)

	// Asset commands
	games.HandleFunc("/build", gameHandler.Build).Methods(http.MethodPost)
	games.HandleFunc("/sell", gameHandler.Sell).Methods(http.MethodPost)
	games.HandleFunc("/mortgage", gameHandler.Mortgage).Methods(http.MethodPost)
	games.HandleFunc("/unmortgage", gameHandler.Unmortgage).Methods(http.MethodPost)

	// Trades
	games.HandleFunc("/trades", gameHandler.ProposeTrade).Methods(http.MethodPost)
	games.HandleFunc("/trades/accept", gameHandler.AcceptTrade).Methods(http.MethodPost)
	games.HandleFunc("/trades/reject", gameHandler.RejectTrade).Methods(http.MethodPost)

	// Jail
	games.HandleFunc("/bail", gameHandler.PayBail).Methods(http.MethodPost)
	games.HandleFunc("/jail-card", gameHandler.UseJailCard).Methods(http.MethodPost)
	games.HandleFunc("/stay", gameHandler.StayInJail).Methods(http.MethodPost)

	// Elimination and automation
	games.HandleFunc("/bankrupt", gameHandler.DeclareBankrupt).Methods(http.MethodPost)
	games.HandleFunc("/bot-turn", gameHandler.BotTurn).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
