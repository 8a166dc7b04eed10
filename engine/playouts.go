package engine

import (
	"sync"

	"gamepack/experiments/metrics"
	"gamepack/game"
	"github.com/rs/zerolog/log"
)

// Playouts runs independent random matches across goroutines. Every match
// builds its own state, so workers only share read-only board geometry.
type Playouts[S game.State[S, M], M comparable] struct {
	variant    string
	newState   func() (S, error)
	players    []game.Player
	goroutines int
	matches    int
	seed       uint64
	options    []Option
	metrics    metrics.Collector
}

func NewPlayouts[S game.State[S, M], M comparable](
	variant string, newState func() (S, error), players []game.Player,
	goroutines, matches int, seed uint64, options ...Option,
) *Playouts[S, M] {
	if goroutines < 1 {
		panic("need at least one goroutine")
	}
	collector := newSettings(options).collector
	return &Playouts[S, M]{
		variant:    variant,
		newState:   newState,
		players:    players,
		goroutines: goroutines,
		matches:    matches,
		seed:       seed,
		options:    options,
		metrics:    collector,
	}
}

// Run plays every match and returns their metrics in match order. Matches
// that could not be set up or played to the end are logged and counted in the
// summary; their metrics carry as much as was known when they stopped.
func (p *Playouts[S, M]) Run() ([]metrics.MatchMetric, metrics.Summary) {
	task := make(chan int, p.matches)
	for i := 0; i < p.matches; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.MatchMetric, p.matches)
	p.metrics.Start(p.goroutines)

	var wg sync.WaitGroup
	for i := 0; i < p.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range task {
				records[index] = p.play(index)
			}
		}()
	}

	wg.Wait()
	return records, p.metrics.Complete()
}

func (p *Playouts[S, M]) play(index int) metrics.MatchMetric {
	state, err := p.newState()
	if err != nil {
		log.Warn().Msgf("failed to set up %s match %d: %v", p.variant, index, err)
		p.metrics.AddFailure()
		return metrics.MatchMetric{Variant: p.variant}
	}
	agent := NewRandomAgent[S, M](p.seed + uint64(index))
	match := NewMatch[S, M](p.variant, state, Seat[S, M](agent, p.players), p.options...)

	_, metric, err := match.Run()
	if err != nil && !metric.Unsupported {
		log.Warn().Msgf("%s match %s failed: %v", p.variant, match.ID, err)
		p.metrics.AddFailure()
	}
	p.metrics.AddMatch(metric)
	return metric
}
