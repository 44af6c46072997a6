package request

import "github.com/atherden/boardwalk/internal/model"

// PlayerSpec describes a roster entry when creating a game
type PlayerSpec struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// CreateGameRequest is the request to create a game
type CreateGameRequest struct {
	Players []PlayerSpec `json:"players"`
}

// CommandRequest identifies which player issues a command
type CommandRequest struct {
	Player model.PlayerID `json:"player"`
}

// RollRequest optionally supplies the dice values (useful for replays)
type RollRequest struct {
	Player model.PlayerID `json:"player"`
	Dice   *[2]int        `json:"dice,omitempty"`
}

// CellCommandRequest targets a specific board cell
type CellCommandRequest struct {
	Player model.PlayerID `json:"player"`
	Cell   int            `json:"cell"`
}

// TradeRequest proposes a trade to another player
type TradeRequest struct {
	Player         model.PlayerID `json:"player"`
	To             model.PlayerID `json:"to"`
	GiveProperties []int          `json:"give_properties"`
	TakeProperties []int          `json:"take_properties"`
	GiveCash       int            `json:"give_cash"`
	TakeCash       int            `json:"take_cash"`
}

// BotTurnRequest selects the strategy for a bot turn
type BotTurnRequest struct {
	Strategy string `json:"strategy,omitempty"`
}
