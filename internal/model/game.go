package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Phase represents where the active player's turn currently stands
type Phase string

const (
	PhaseAwaitingRoll     Phase = "awaiting_roll"     // active player must roll (or resolve jail)
	PhaseMoving           Phase = "moving"            // transient: position update in progress
	PhaseResolvingLanding Phase = "resolving_landing" // transient: landing effect being applied
	PhaseAwaitingDecision Phase = "awaiting_decision" // buy/skip or chance-card acknowledgement pending
	PhasePostDecision     Phase = "post_decision"     // rolled and resolved; asset management until end of turn
	PhaseTurnComplete     Phase = "turn_complete"     // transient: turn handed to the next player
)

// DeckCursor tracks the draw position of one fixed-order card deck
type DeckCursor int

// Game is the complete mutable state of one game. It is created once per
// game and mutated exclusively through the engine's command surface.
type Game struct {
	ID      GameID   `json:"id"`
	Players []Player `json:"players"`

	// Absent entry = bank-owned
	Ownership map[int]PlayerID `json:"ownership"`
	Mortgaged map[int]bool     `json:"mortgaged"`
	Houses    map[int]int      `json:"houses"` // 0-4 houses, 5 = hotel

	ActiveIdx      int  `json:"active_idx"` // index into Players
	RolledThisTurn bool `json:"rolled_this_turn"`
	Phase          Phase `json:"phase"`

	// Pending decision state; at most one of these is set at a time
	PendingBuy  int        `json:"pending_buy"` // cell index awaiting buy/skip, -1 if none
	PendingCard *DrawnCard `json:"pending_card,omitempty"`

	// At most one pending trade exists at a time
	PendingTrade *TradeOffer `json:"pending_trade,omitempty"`

	ChanceCursor DeckCursor `json:"chance_cursor"`
	ChestCursor  DeckCursor `json:"chest_cursor"`

	LastDice [2]int `json:"last_dice"`
	Turn     int    `json:"turn"` // monotonic count of completed turns

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	return &g.Players[g.ActiveIdx]
}

// Player returns the player with the given id, or nil if out of range
func (g *Game) Player(id PlayerID) *Player {
	if int(id) < 0 || int(id) >= len(g.Players) {
		return nil
	}
	return &g.Players[id]
}

// PlayersRemaining counts non-bankrupt players
func (g *Game) PlayersRemaining() int {
	n := 0
	for i := range g.Players {
		if !g.Players[i].IsBankrupt {
			n++
		}
	}
	return n
}

// Winner returns the sole remaining player, or NoPlayer while more than
// one player is still in the game
func (g *Game) Winner() PlayerID {
	winner := NoPlayer
	for i := range g.Players {
		if g.Players[i].IsBankrupt {
			continue
		}
		if winner != NoPlayer {
			return NoPlayer
		}
		winner = g.Players[i].ID
	}
	return winner
}

// Over reports whether the game has ended by elimination
func (g *Game) Over() bool {
	return g.Winner() != NoPlayer
}

// OwnerOf returns the owner of a cell, or NoPlayer for bank-owned cells
func (g *Game) OwnerOf(cellIndex int) PlayerID {
	owner, ok := g.Ownership[cellIndex]
	if !ok {
		return NoPlayer
	}
	return owner
}

// CellsOwnedBy returns the indices of every cell owned by the player
func (g *Game) CellsOwnedBy(id PlayerID) []int {
	var cells []int
	for idx, owner := range g.Ownership {
		if owner == id {
			cells = append(cells, idx)
		}
	}
	return cells
}

// HousesOn returns the house count on a cell (5 meaning a hotel)
func (g *Game) HousesOn(cellIndex int) int {
	return g.Houses[cellIndex]
}

// TotalHousesOwnedBy sums house counts over every cell the player owns
func (g *Game) TotalHousesOwnedBy(id PlayerID) int {
	total := 0
	for idx, owner := range g.Ownership {
		if owner == id {
			total += g.Houses[idx]
		}
	}
	return total
}

// DecisionPending reports whether a buy/skip or card acknowledgement is
// blocking the active player's turn
func (g *Game) DecisionPending() bool {
	return g.PendingBuy >= 0 || g.PendingCard != nil
}

// Snapshot returns a deep copy safe to hand to strategies and API callers
func (g *Game) Snapshot() *Game {
	cp := *g
	cp.Players = make([]Player, len(g.Players))
	copy(cp.Players, g.Players)
	cp.Ownership = make(map[int]PlayerID, len(g.Ownership))
	for k, v := range g.Ownership {
		cp.Ownership[k] = v
	}
	cp.Mortgaged = make(map[int]bool, len(g.Mortgaged))
	for k, v := range g.Mortgaged {
		cp.Mortgaged[k] = v
	}
	cp.Houses = make(map[int]int, len(g.Houses))
	for k, v := range g.Houses {
		cp.Houses[k] = v
	}
	if g.PendingCard != nil {
		card := *g.PendingCard
		cp.PendingCard = &card
	}
	if g.PendingTrade != nil {
		trade := g.PendingTrade.Clone()
		cp.PendingTrade = trade
	}
	return &cp
}
