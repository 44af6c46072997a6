package engine

// Config holds the engine's economic constants
type Config struct {
	StartingCash   int
	PassStartBonus int
	Bail           int
	MaxJailTurns   int
	// PassStartOnCardMove controls whether a relative card move that wraps
	// past Go credits the pass-start bonus
	PassStartOnCardMove bool
}

// DefaultConfig returns the standard rule set
func DefaultConfig() Config {
	return Config{
		StartingCash:        1500,
		PassStartBonus:      200,
		Bail:                50,
		MaxJailTurns:        3,
		PassStartOnCardMove: true,
	}
}
