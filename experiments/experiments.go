package experiments

import (
	"fmt"
	"sync/atomic"

	"gamepack/board"
	"gamepack/config"
	"gamepack/engine"
	"gamepack/experiments/metrics"
	"gamepack/game"
	"gamepack/games/chess"
	"gamepack/games/colograph"
	"gamepack/games/connectfour"
	"gamepack/games/mancala"
	"gamepack/games/reversi"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Run plays the configured number of random matches of the configured
// variant and, when an output directory is set, stores their records.
func Run(c config.Config) (metrics.Summary, error) {
	if err := c.Validate(); err != nil {
		return metrics.Summary{}, err
	}

	log.Info().Msgf("starting %d %s playouts on %d goroutines...", c.Matches, c.Variant, c.Goroutines)
	records, summary, err := play(c)
	if err != nil {
		return summary, err
	}
	log.Info().Msgf("completed %d matches, %d complete, %d unsupported, %d failed, %d plies in %s",
		summary.Matches, summary.Complete, summary.Unsupported, summary.Failed, summary.Plies, summary.Duration)

	if c.OutputDir == "" {
		return summary, nil
	}
	writer, err := metrics.NewWriter(c.OutputDir)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteMatchRecords(records); err != nil {
		return summary, err
	}
	if err := writer.WriteSummary(c.Variant, summary); err != nil {
		return summary, err
	}
	log.Info().Msgf("stored match records in %s", writer.Dir())
	return summary, nil
}

func play(c config.Config) ([]metrics.MatchMetric, metrics.Summary, error) {
	switch c.Variant {
	case connectfour.Identifier:
		newState := func() (*connectfour.State, error) {
			return connectfour.New(c.ConnectFour)
		}
		records, summary := playouts[*connectfour.State, int](c, newState, connectfour.Players)
		return records, summary, nil

	case reversi.Reversi, reversi.Othello:
		newState := func() (*reversi.State, error) {
			if c.Variant == reversi.Reversi {
				return reversi.NewReversi(c.Reversi)
			}
			return reversi.NewOthello(c.Reversi)
		}
		evaluate := game.Evaluate[*reversi.State](reversi.PieceRatio)
		if c.Reversi.Rows == 8 && c.Reversi.Columns == 8 {
			evaluate = reversi.DefaultHeuristic()
		}
		records, summary := playouts[*reversi.State, board.Coord](c, newState, reversi.Players,
			engine.WithEvaluation(evaluate))
		return records, summary, nil

	case mancala.Identifier:
		newState := func() (*mancala.State, error) {
			return mancala.New(c.Mancala)
		}
		records, summary := playouts[*mancala.State, int](c, newState, mancala.Players,
			engine.WithEvaluation(mancala.DefaultHeuristic(c.Mancala.Houses)))
		return records, summary, nil

	case colograph.Identifier:
		// Workers call newState concurrently, so every graph gets its own source.
		var graphs atomic.Uint64
		newState := func() (*colograph.State, error) {
			rng := rand.New(rand.NewSource(c.Seed + graphs.Add(1)))
			return colograph.RandomGame(c.Colograph, rng)
		}
		records, summary := playouts[*colograph.State, int](c, newState, colograph.Players,
			engine.WithEvaluation[*colograph.State](colograph.ScoreDifference))
		return records, summary, nil

	case chess.Identifier:
		newState := func() (*chess.State, error) {
			return chess.New(), nil
		}
		records, summary := playouts[*chess.State, chess.Move](c, newState, chess.Players)
		return records, summary, nil

	default:
		return nil, metrics.Summary{}, fmt.Errorf("unknown variant %q", c.Variant)
	}
}

func playouts[S game.State[S, M], M comparable](
	c config.Config, newState func() (S, error), players []game.Player, options ...engine.Option,
) ([]metrics.MatchMetric, metrics.Summary) {
	options = append([]engine.Option{
		engine.WithMaxPlies(c.MaxPlies),
		engine.WithInPlace(c.InPlace),
		engine.WithCollector(metrics.NewCollector()),
	}, options...)
	return engine.NewPlayouts[S, M](c.Variant, newState, players, c.Goroutines, c.Matches, c.Seed, options...).Run()
}
