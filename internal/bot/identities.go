package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// BotIdentity describes a bot profile from the identity pool file.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       string `json:"level"` // "basic" or "smart"
	AvatarIndex int    `json:"avatar_index"`
}

const botIDPrefix = "bot-"

var (
	botIdentities     []BotIdentity
	botIDMap          map[string]bool
	botDisplayNameMap map[string]string
	loadOnce          sync.Once
	loadErr           error
)

// LoadIdentities loads the bot profiles from the given path. Safe to call
// repeatedly; only the first call reads the file.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		botIDMap = make(map[string]bool)
		botDisplayNameMap = make(map[string]string)
		for _, identity := range botIdentities {
			if identity.UserID != "" {
				botIDMap[identity.UserID] = true
				botDisplayNameMap[identity.UserID] = identity.DisplayName
			}
		}
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
// With no pool loaded it fabricates a uuid-backed identity so matches can
// still fill seats.
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      botIDPrefix + uuid.NewString()[:8],
			DisplayName: fmt.Sprintf("CPU %d", index+1),
			Level:       "smart",
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// GetBotDisplayName returns the display name for a bot ID, or an empty
// string for unknown IDs.
func GetBotDisplayName(userID string) string {
	if name, ok := botDisplayNameMap[userID]; ok {
		return name
	}
	if strings.HasPrefix(userID, botIDPrefix) {
		return "CPU"
	}
	return ""
}

// IsBot reports whether the given user ID belongs to a bot.
func IsBot(userID string) bool {
	if botIDMap[userID] {
		return true
	}
	return strings.HasPrefix(userID, botIDPrefix)
}
