package game

// Player identifies a participant of a match, e.g. "Black" or "North".
type Player string

type StateHash uint64

// Result maps every participant to its signed outcome. A nil Result means the
// match has not finished.
type Result map[Player]float64

// State is the contract every rule engine implements so it can be driven by an
// external harness. S is the concrete state type and M the variant's move.
//
// Next never modifies the receiver. Update modifies the receiver in place and
// discards any cached moves or result; on error the receiver is left untouched.
type State[S any, M comparable] interface {
	ActivePlayers() []Player
	// Moves returns the legal moves of every active player, or nil when the
	// match is over.
	Moves() (map[Player][]M, error)
	Next(moves map[Player]M) (S, error)
	Update(moves map[Player]M) error
	// Result returns nil while the match is still going on.
	Result() (Result, error)
	Hash() StateHash
}

// Evaluates a state from the given player's perspective to a score between -1
// and 1.
type Evaluate[S any] func(state S, player Player) float64
