package game

// Weighted pairs an evaluation with its share of a composite evaluation.
type Weighted[S any] struct {
	Evaluate Evaluate[S]
	Weight   float64
}

// Composite sums the weighted evaluations. Weights are expected to add up to
// 1 so the composite stays between -1 and 1.
func Composite[S any](parts ...Weighted[S]) Evaluate[S] {
	return func(state S, player Player) float64 {
		total := 0.0
		for _, part := range parts {
			total += part.Weight * part.Evaluate(state, player)
		}
		return total
	}
}
