package response

import (
	"time"

	"github.com/atherden/boardwalk/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID              model.PlayerID `json:"id"`
	Name            string         `json:"name"`
	Kind            string         `json:"kind"`
	Cash            int            `json:"cash"`
	Position        int            `json:"position"`
	InJail          bool           `json:"in_jail"`
	JailTurnsLeft   int            `json:"jail_turns_left,omitempty"`
	HasJailFreeCard bool           `json:"has_jail_free_card,omitempty"`
	IsBankrupt      bool           `json:"is_bankrupt,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:              p.ID,
		Name:            p.Name,
		Kind:            string(p.Kind),
		Cash:            p.Cash,
		Position:        p.Position,
		InJail:          p.InJail,
		JailTurnsLeft:   p.JailTurnsLeft,
		HasJailFreeCard: p.HasJailFreeCard,
		IsBankrupt:      p.IsBankrupt,
	}
}

// Holding describes one owned cell in API responses
type Holding struct {
	Cell      int            `json:"cell"`
	Owner     model.PlayerID `json:"owner"`
	Mortgaged bool           `json:"mortgaged,omitempty"`
	Houses    int            `json:"houses,omitempty"`
}

// PendingCard describes a drawn card awaiting acknowledgement
type PendingCard struct {
	Deck string `json:"deck"`
	Text string `json:"text"`
}

// Trade represents a pending trade offer
type Trade struct {
	From           model.PlayerID `json:"from"`
	To             model.PlayerID `json:"to"`
	GiveProperties []int          `json:"give_properties"`
	TakeProperties []int          `json:"take_properties"`
	GiveCash       int            `json:"give_cash"`
	TakeCash       int            `json:"take_cash"`
	Status         string         `json:"status"`
}

// TradeFromModel converts a model.TradeOffer
func TradeFromModel(t *model.TradeOffer) *Trade {
	if t == nil {
		return nil
	}
	return &Trade{
		From:           t.From,
		To:             t.To,
		GiveProperties: t.GiveProperties,
		TakeProperties: t.TakeProperties,
		GiveCash:       t.GiveCash,
		TakeCash:       t.TakeCash,
		Status:         string(t.Status),
	}
}

// GameState is the full game snapshot in API responses
type GameState struct {
	ID           model.GameID    `json:"id"`
	Phase        string          `json:"phase"`
	Turn         int             `json:"turn"`
	ActiveID     model.PlayerID  `json:"active_player"`
	Players      []Player        `json:"players"`
	Holdings     []Holding       `json:"holdings"`
	LastDice     [2]int          `json:"last_dice"`
	PendingBuy   *int            `json:"pending_buy,omitempty"`
	PendingCard  *PendingCard    `json:"pending_card,omitempty"`
	PendingTrade *Trade          `json:"pending_trade,omitempty"`
	Winner       *model.PlayerID `json:"winner,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// GameStateFromModel converts a model.Game snapshot
func GameStateFromModel(g *model.Game) GameState {
	players := make([]Player, len(g.Players))
	for i := range g.Players {
		players[i] = PlayerFromModel(&g.Players[i])
	}

	holdings := make([]Holding, 0, len(g.Ownership))
	for cell, owner := range g.Ownership {
		holdings = append(holdings, Holding{
			Cell:      cell,
			Owner:     owner,
			Mortgaged: g.Mortgaged[cell],
			Houses:    g.Houses[cell],
		})
	}

	resp := GameState{
		ID:           g.ID,
		Phase:        string(g.Phase),
		Turn:         g.Turn,
		ActiveID:     g.ActivePlayer().ID,
		Players:      players,
		Holdings:     holdings,
		LastDice:     g.LastDice,
		PendingTrade: TradeFromModel(g.PendingTrade),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if g.PendingBuy >= 0 {
		cell := g.PendingBuy
		resp.PendingBuy = &cell
	}
	if g.PendingCard != nil {
		resp.PendingCard = &PendingCard{
			Deck: string(g.PendingCard.Deck),
			Text: g.PendingCard.Card.Text,
		}
	}
	if w := g.Winner(); w != model.NoPlayer {
		winner := w
		resp.Winner = &winner
	}

	return resp
}

// RollResponse reports the dice and resulting state after a roll
type RollResponse struct {
	Dice  [2]int    `json:"dice"`
	State GameState `json:"state"`
}

// AllowedActionsResponse lists the commands a player may issue right now
type AllowedActionsResponse struct {
	Player  model.PlayerID     `json:"player"`
	Actions []model.ActionType `json:"actions"`
}

// WinnerResponse reports the winner, if the game has one
type WinnerResponse struct {
	Over   bool            `json:"over"`
	Winner *model.PlayerID `json:"winner,omitempty"`
}

// BotAction describes one command a bot runner executed
type BotAction struct {
	Type     string `json:"type"`
	Cell     int    `json:"cell,omitempty"`
	Rejected bool   `json:"rejected,omitempty"`
}

// BotTurnResponse reports a completed bot turn
type BotTurnResponse struct {
	Actions []BotAction `json:"actions"`
	State   GameState   `json:"state"`
}
