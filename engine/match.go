package engine

import (
	"errors"
	"fmt"
	"time"

	"gamepack/experiments/metrics"
	"gamepack/game"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type settings struct {
	maxPlies  int
	inPlace   bool
	evaluate  any
	collector metrics.Collector
}

type Option func(s *settings)

func WithMaxPlies(plies int) Option {
	return func(s *settings) {
		if plies > 0 {
			s.maxPlies = plies
		}
	}
}

// WithInPlace drives the match with Update instead of Next.
func WithInPlace(inPlace bool) Option {
	return func(s *settings) {
		s.inPlace = inPlace
	}
}

// WithEvaluation scores matches stopped by the ply limit.
func WithEvaluation[S any](evaluate game.Evaluate[S]) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.collector = collector
		}
	}
}

func newSettings(options []Option) *settings {
	s := &settings{ // Default values
		maxPlies:  DefaultMaxPlies,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Match drives one state with one agent per player until the match ends or
// the ply limit is reached.
type Match[S game.State[S, M], M comparable] struct {
	ID       uuid.UUID
	Variant  string
	State    S
	Agents   map[game.Player]Agent[S, M]
	settings *settings
}

func NewMatch[S game.State[S, M], M comparable](
	variant string, state S, agents map[game.Player]Agent[S, M], options ...Option,
) *Match[S, M] {
	if len(agents) == 0 {
		panic("need at least one agent")
	}
	return &Match[S, M]{
		ID:       uuid.New(),
		Variant:  variant,
		State:    state,
		Agents:   agents,
		settings: newSettings(options),
	}
}

// Run plays the match. A match stopped by the ply limit has no result unless
// an evaluation was configured. Positions the rules cannot resolve stop the
// match with an error wrapping game.ErrUnsupportedFeature.
func (m *Match[S, M]) Run() (game.Result, metrics.MatchMetric, error) {
	metric := metrics.MatchMetric{
		ID:        m.ID,
		Variant:   m.Variant,
		StartTime: time.Now(),
	}
	if active := m.State.ActivePlayers(); len(active) > 0 {
		metric.StartingPlayer = active[0]
	}
	log.Debug().Msgf("match %s of %s is starting with %s", m.ID, m.Variant, metric.StartingPlayer)

	finish := func(result game.Result, err error) (game.Result, metrics.MatchMetric, error) {
		metric.EndTime = time.Now()
		metric.Duration = metric.EndTime.Sub(metric.StartTime)
		metric.Result = result
		metric.Unsupported = errors.Is(err, game.ErrUnsupportedFeature)
		return result, metric, err
	}

	for metric.Plies < m.settings.maxPlies {
		moves, err := m.State.Moves()
		if err != nil {
			return finish(nil, fmt.Errorf("failed to list moves at ply %d: %w", metric.Plies, err))
		}
		if moves == nil {
			break
		}
		decisions, err := m.decide(moves)
		if err != nil {
			return finish(nil, err)
		}
		if m.settings.inPlace {
			err = m.State.Update(decisions)
		} else {
			var next S
			next, err = m.State.Next(decisions)
			if err == nil {
				m.State = next
			}
		}
		if err != nil {
			return finish(nil, fmt.Errorf("failed to play ply %d: %w", metric.Plies, err))
		}
		metric.Plies++
		m.settings.collector.AddPly()
	}

	result, err := m.State.Result()
	if err != nil {
		return finish(nil, fmt.Errorf("failed to score the match: %w", err))
	}
	if result != nil {
		metric.Complete = true
		log.Debug().Msgf("match %s ended after %d plies with %v", m.ID, metric.Plies, result)
		return finish(result, nil)
	}

	log.Debug().Msgf("match %s stopped after %d plies", m.ID, metric.Plies)
	if evaluate, ok := m.settings.evaluate.(game.Evaluate[S]); ok {
		result = make(game.Result, len(m.Agents))
		for player := range m.Agents {
			result[player] = evaluate(m.State, player)
		}
	}
	return finish(result, nil)
}

// decide asks every active player's agent for a move, in player order.
func (m *Match[S, M]) decide(moves map[game.Player][]M) (map[game.Player]M, error) {
	players := make([]game.Player, 0, len(moves))
	for p := range moves {
		players = append(players, p)
	}
	slices.Sort(players)

	decisions := make(map[game.Player]M, len(moves))
	for _, player := range players {
		agent, ok := m.Agents[player]
		if !ok {
			return nil, fmt.Errorf("no agent for player %s", player)
		}
		move, err := agent.Choose(m.State, player, moves[player])
		if err != nil {
			return nil, fmt.Errorf("agent of %s failed to choose: %w", player, err)
		}
		decisions[player] = move
	}
	return decisions, nil
}
