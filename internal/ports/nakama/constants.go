package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an open table.
	RpcQuickMatch = "quick_match"

	// MatchNameShengji is the authoritative match handler name registered with Nakama.
	MatchNameShengji = "shengji_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame    int64 = 1
	OpDeclareTrump int64 = 2
	OpNoSnatch     int64 = 3
	OpBuryKitty    int64 = 4
	OpPlayCards    int64 = 5

	// Server -> Client events
	OpMatchSnapshot  int64 = 101
	OpHandDealt      int64 = 102
	OpTrumpDeclared  int64 = 103
	OpTrumpSettled   int64 = 104
	OpKittyBuried    int64 = 105
	OpLeadAnnounced  int64 = 106
	OpTrickUpdate    int64 = 107
	OpTrickEnd       int64 = 108
	OpThrowPunished  int64 = 109
	OpRoundResult    int64 = 110
	OpGameOver       int64 = 111
	OpActionRejected int64 = 112
)
