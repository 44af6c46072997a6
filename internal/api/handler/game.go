package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/atherden/boardwalk/internal/api/apierr"
	"github.com/atherden/boardwalk/internal/api/request"
	"github.com/atherden/boardwalk/internal/api/response"
	"github.com/atherden/boardwalk/internal/model"
	"github.com/atherden/boardwalk/internal/services/bot"
	"github.com/atherden/boardwalk/internal/services/engine"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller *engine.Controller
	botService *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *engine.Controller, botService *bot.Service) *GameHandler {
	return &GameHandler{
		controller: controller,
		botService: botService,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.Players) < 2 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("at least two players required"))
		return
	}

	specs := make([]engine.NewPlayerSpec, len(req.Players))
	for i, p := range req.Players {
		kind := model.PlayerKind(p.Kind)
		switch kind {
		case "":
			kind = model.PlayerKindHuman
		case model.PlayerKindHuman, model.PlayerKindAutomated:
		default:
			apierr.WriteError(w, apierr.NewInvalidRequestError("player kind must be 'human' or 'automated'"))
			return
		}
		specs[i] = engine.NewPlayerSpec{Name: p.Name, Kind: kind}
	}

	g, err := h.controller.CreateGame(r.Context(), specs)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.Snapshot(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// AllowedActions handles GET /api/v1/games/{id}/allowed-actions
func (h *GameHandler) AllowedActions(w http.ResponseWriter, r *http.Request) {
	playerParam := r.URL.Query().Get("player")
	playerID, err := strconv.Atoi(playerParam)
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player query parameter required"))
		return
	}

	actions, err := h.controller.AllowedActions(r.Context(), gameID(r), model.PlayerID(playerID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AllowedActionsResponse{
		Player:  model.PlayerID(playerID),
		Actions: actions,
	})
}

// Winner handles GET /api/v1/games/{id}/winner
func (h *GameHandler) Winner(w http.ResponseWriter, r *http.Request) {
	winner, err := h.controller.Winner(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.WinnerResponse{}
	if winner != model.NoPlayer {
		resp.Over = true
		resp.Winner = &winner
	}
	response.JSON(w, http.StatusOK, resp)
}

// Roll handles POST /api/v1/games/{id}/roll
func (h *GameHandler) Roll(w http.ResponseWriter, r *http.Request) {
	var req request.RollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	var dice model.DiceRoll
	if req.Dice != nil {
		dice = model.DiceRoll{D1: req.Dice[0], D2: req.Dice[1]}
		if err := h.controller.RollDiceValues(r.Context(), id, req.Player, dice); err != nil {
			apierr.WriteError(w, err)
			return
		}
	} else {
		roll, err := h.controller.RollDice(r.Context(), id, req.Player)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		dice = roll
	}

	g, err := h.controller.Snapshot(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RollResponse{
		Dice:  [2]int{dice.D1, dice.D2},
		State: response.GameStateFromModel(g),
	})
}

// Buy handles POST /api/v1/games/{id}/buy
func (h *GameHandler) Buy(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.BuyProperty)
}

// Skip handles POST /api/v1/games/{id}/skip
func (h *GameHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.SkipProperty)
}

// AckCard handles POST /api/v1/games/{id}/ack-card
func (h *GameHandler) AckCard(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.AcknowledgeChanceCard)
}

// EndTurn handles POST /api/v1/games/{id}/end-turn
func (h *GameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.EndTurn)
}

// PayBail handles POST /api/v1/games/{id}/bail
func (h *GameHandler) PayBail(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.PayBail)
}

// UseJailCard handles POST /api/v1/games/{id}/jail-card
func (h *GameHandler) UseJailCard(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.UseJailFreeCard)
}

// StayInJail handles POST /api/v1/games/{id}/stay
func (h *GameHandler) StayInJail(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.StayInJail)
}

// DeclareBankrupt handles POST /api/v1/games/{id}/bankrupt
func (h *GameHandler) DeclareBankrupt(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.DeclareBankrupt)
}

// AcceptTrade handles POST /api/v1/games/{id}/trades/accept
func (h *GameHandler) AcceptTrade(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.AcceptTrade)
}

// RejectTrade handles POST /api/v1/games/{id}/trades/reject
func (h *GameHandler) RejectTrade(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.controller.RejectTrade)
}

// Build handles POST /api/v1/games/{id}/build
func (h *GameHandler) Build(w http.ResponseWriter, r *http.Request) {
	h.cellCommand(w, r, h.controller.BuildHouse)
}

// Sell handles POST /api/v1/games/{id}/sell
func (h *GameHandler) Sell(w http.ResponseWriter, r *http.Request) {
	h.cellCommand(w, r, h.controller.SellHouse)
}

// Mortgage handles POST /api/v1/games/{id}/mortgage
func (h *GameHandler) Mortgage(w http.ResponseWriter, r *http.Request) {
	h.cellCommand(w, r, h.controller.Mortgage)
}

// Unmortgage handles POST /api/v1/games/{id}/unmortgage
func (h *GameHandler) Unmortgage(w http.ResponseWriter, r *http.Request) {
	h.cellCommand(w, r, h.controller.Unmortgage)
}

// ProposeTrade handles POST /api/v1/games/{id}/trades
func (h *GameHandler) ProposeTrade(w http.ResponseWriter, r *http.Request) {
	var req request.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	offer := model.TradeOffer{
		From:           req.Player,
		To:             req.To,
		GiveProperties: req.GiveProperties,
		TakeProperties: req.TakeProperties,
		GiveCash:       req.GiveCash,
		TakeCash:       req.TakeCash,
	}

	if err := h.controller.ProposeTrade(r.Context(), id, req.Player, offer); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.writeState(w, r, id)
}

// BotTurn handles POST /api/v1/games/{id}/bot-turn
func (h *GameHandler) BotTurn(w http.ResponseWriter, r *http.Request) {
	var req request.BotTurnRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
			return
		}
	}

	id := gameID(r)
	executed, err := h.botService.PlayTurn(r.Context(), id, req.Strategy)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	g, err := h.controller.Snapshot(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	actions := make([]response.BotAction, len(executed))
	for i, a := range executed {
		actions[i] = response.BotAction{
			Type:     string(a.Action.Type),
			Cell:     a.Action.Cell,
			Rejected: a.Rejected,
		}
	}

	response.JSON(w, http.StatusOK, response.BotTurnResponse{
		Actions: actions,
		State:   response.GameStateFromModel(g),
	})
}

// command runs a player-only engine command and responds with the new state
func (h *GameHandler) command(w http.ResponseWriter, r *http.Request, fn func(context.Context, model.GameID, model.PlayerID) error) {
	var req request.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := fn(r.Context(), id, req.Player); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.writeState(w, r, id)
}

// cellCommand runs a cell-targeted engine command and responds with the new state
func (h *GameHandler) cellCommand(w http.ResponseWriter, r *http.Request, fn func(context.Context, model.GameID, model.PlayerID, int) error) {
	var req request.CellCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id := gameID(r)
	if err := fn(r.Context(), id, req.Player, req.Cell); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.writeState(w, r, id)
}

func (h *GameHandler) writeState(w http.ResponseWriter, r *http.Request, id model.GameID) {
	g, err := h.controller.Snapshot(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
