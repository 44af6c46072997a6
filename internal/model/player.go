package model

// PlayerID is a player's stable index in the game roster
type PlayerID int

// NoPlayer marks the absence of a player (e.g. bank-owned cells)
const NoPlayer PlayerID = -1

// PlayerKind distinguishes human-driven players from automated ones
type PlayerKind string

const (
	PlayerKindHuman     PlayerKind = "human"
	PlayerKindAutomated PlayerKind = "automated"
)

// Player represents a game participant. Players are created at game start
// and never removed from the roster; bankrupt players stay, flagged.
type Player struct {
	ID              PlayerID   `json:"id"`
	Name            string     `json:"name"`
	Kind            PlayerKind `json:"kind"`
	Cash            int        `json:"cash"` // may go transiently negative pending bankruptcy
	Position        int        `json:"position"`
	InJail          bool       `json:"in_jail"`
	JailTurnsLeft   int        `json:"jail_turns_left"`
	HasJailFreeCard bool       `json:"has_jail_free_card"`
	IsBankrupt      bool       `json:"is_bankrupt"`
}
