package engine

import (
	"fmt"

	"gamepack/game"
	"gamepack/meta"
	"golang.org/x/exp/rand"
)

const DefaultMaxPlies = meta.MAX_PLIES

// Agent chooses the move of one active player.
type Agent[S any, M comparable] interface {
	Choose(state S, player game.Player, moves []M) (M, error)
}

// RandomAgent picks uniformly among the legal moves. It is not safe for
// concurrent use; give every goroutine its own agent.
type RandomAgent[S any, M comparable] struct {
	rng *rand.Rand
}

func NewRandomAgent[S any, M comparable](seed uint64) *RandomAgent[S, M] {
	return &RandomAgent[S, M]{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent[S, M]) Choose(state S, player game.Player, moves []M) (M, error) {
	if len(moves) == 0 {
		var none M
		return none, fmt.Errorf("no moves to choose from for %s", player)
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// Seat gives the same agent to every player.
func Seat[S any, M comparable](agent Agent[S, M], players []game.Player) map[game.Player]Agent[S, M] {
	agents := make(map[game.Player]Agent[S, M], len(players))
	for _, p := range players {
		agents[p] = agent
	}
	return agents
}
