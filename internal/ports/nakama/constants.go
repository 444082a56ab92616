package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameDaifugo is the authoritative match handler name registered with Nakama.
	MatchNameDaifugo = "daifugo_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound      int64 = 1
	OpPlayCards       int64 = 2
	OpPassTurn        int64 = 3
	OpRequestNewRound int64 = 4

	// Server -> Client events
	OpPlayerJoined   int64 = 101
	OpPlayerLeft     int64 = 102
	OpRoundStarted   int64 = 103
	OpHandDealt      int64 = 104 // send privately
	OpCardPlayed     int64 = 105
	OpTurnPassed     int64 = 106
	OpTableCleared   int64 = 107
	OpPlayerFinished int64 = 108
	OpRoundEnded     int64 = 109
	OpSnapshot       int64 = 110
	OpError          int64 = 111
)
