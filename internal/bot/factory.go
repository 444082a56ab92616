package bot

import "fmt"

// BotLevel selects a strategy implementation.
type BotLevel int

const (
	// BotLevelBasic plays the globally weakest legal candidate with no
	// regard for conserving premium plays.
	BotLevelBasic BotLevel = iota
	// BotLevelSmart is the default policy: weakest legal candidate,
	// premium plays conserved until nothing else remains.
	BotLevelSmart
)

// ParseLevel maps a configuration string to a BotLevel, defaulting to smart.
func ParseLevel(s string) BotLevel {
	if s == "basic" {
		return BotLevelBasic
	}
	return BotLevelSmart
}

// NewBrain creates a bot brain for the given level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &BasicBot{}, nil
	case BotLevelSmart:
		return &SmartBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgent builds an agent for the given identity, with the strategy its
// profile asks for.
func NewAgent(identity BotIdentity) (*Agent, error) {
	brain, err := NewBrain(ParseLevel(identity.Level))
	if err != nil {
		return nil, err
	}
	return &Agent{ID: identity.UserID, Name: identity.DisplayName, Strategy: brain}, nil
}
