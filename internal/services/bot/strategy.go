package bot

import "github.com/atherden/boardwalk/internal/model"

// Strategy is the decision-producing collaborator for an automated
// player. Given a read-only snapshot it returns the full plan for the
// turn: pre-roll intents, at most one roll (dice supplied verbatim),
// then post-roll intents. The engine re-validates every suggestion.
type Strategy interface {
	Decide(snapshot *model.Game, playerID model.PlayerID) model.Decision
}

// Strategy name constants
const (
	StrategyGreedy = "greedy"
)
