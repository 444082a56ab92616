package domain

// Phase represents the lifecycle stage of a Daifugo round.
type Phase string

const (
	// PhaseLobby is the pre-round state where seats are assigned.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active state where plays and passes are processed.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a round concludes.
	PhaseEnded Phase = "ended"
)

// Suit identifies a card suit. The joker carries its own suit value so a
// wildcard never satisfies a suit-based check by accident.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	Joker
)

// NoSuit marks the absence of a suit, used for the inactive suit lock.
const NoSuit Suit = -1

// JokerRank is the rank carried by the single wildcard card.
const JokerRank = 0

// EightRank is the rank that flushes the table when it appears in a play.
const EightRank = 8

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Joker:
		return "joker"
	default:
		return "none"
	}
}

// Card is a single playing card. Rank is 1(A)..13(K) for standard cards and
// 0 for the joker. Cards compare by value.
type Card struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

// IsJoker reports whether the card is the wildcard.
func (c Card) IsJoker() bool {
	return c.Suit == Joker || c.Rank == JokerRank
}

var rankLabels = [...]string{
	"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

var suitLabels = [...]string{"C", "D", "H", "S"}

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	if c.Rank < 1 || c.Rank > 13 || c.Suit < Clubs || c.Suit > Spades {
		return "?"
	}
	return rankLabels[c.Rank] + suitLabels[c.Suit]
}

// Player holds the state for one participant in the round.
type Player struct {
	ID       int
	Name     string
	Human    bool
	Hand     []Card
	Finished bool
	Rank     int // 1-based finish rank, 0 until finished
}

// Game captures the authoritative state of a single round. It is mutated
// only by the app service; everything in this package is a pure function
// over it.
type Game struct {
	Phase             Phase
	Players           []*Player // seating order
	CurrentTurn       int       // index into Players
	Table             *Play     // nil when the table is clear
	TableOwner        int       // seat of the table play's owner, -1 when clear
	ConsecutivePasses int
	Revolution        bool
	SuitLock          Suit  // NoSuit when inactive
	FinishOrder       []int // player IDs in the order they emptied their hands
	Discards          []Card
}

// CountUnfinished returns the number of players still in the running.
func CountUnfinished(g *Game) int {
	n := 0
	for _, p := range g.Players {
		if !p.Finished {
			n++
		}
	}
	return n
}

// NextUnfinishedSeat returns the next seat after i, in seating order,
// occupied by a player who has not finished. Callers must ensure at least
// one such player exists.
func NextUnfinishedSeat(g *Game, i int) int {
	j := (i + 1) % len(g.Players)
	for g.Players[j].Finished {
		j = (j + 1) % len(g.Players)
	}
	return j
}
