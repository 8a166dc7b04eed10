package game

// Opponent returns the player following the given one in turn order.
func Opponent(players []Player, player Player) Player {
	for i, p := range players {
		if p == player {
			return players[(i+1)%len(players)]
		}
	}
	panic("unknown player " + string(player))
}

// ZeroSum builds a two player result where the given player scores score and
// its opponent scores the negation.
func ZeroSum(players []Player, score float64, player Player) Result {
	result := make(Result, len(players))
	for _, p := range players {
		if p == player {
			result[p] = score
		} else {
			result[p] = -score
		}
	}
	return result
}

// Victory gives +1 to every winner and -1 to everyone else.
func Victory(players []Player, winners ...Player) Result {
	result := make(Result, len(players))
	for _, p := range players {
		result[p] = -1
	}
	for _, w := range winners {
		result[w] = 1
	}
	return result
}

func Tied(players []Player) Result {
	result := make(Result, len(players))
	for _, p := range players {
		result[p] = 0
	}
	return result
}

// Sum adds up every participant's outcome.
func (r Result) Sum() float64 {
	total := 0.0
	for _, v := range r {
		total += v
	}
	return total
}
