package metrics

import (
	"sync/atomic"
	"time"

	"gamepack/game"
	"github.com/google/uuid"
)

// MatchMetric describes one match driven from its initial state.
type MatchMetric struct {
	ID             uuid.UUID
	Variant        string
	StartingPlayer game.Player
	Result         game.Result
	Plies          int
	Complete       bool // Reached a terminal state rather than the ply limit
	Unsupported    bool // Stopped on a position the rules cannot resolve
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// Summary aggregates a batch of playouts.
type Summary struct {
	Goroutines  int
	Duration    time.Duration
	Matches     int
	Plies       int
	Complete    int
	Unsupported int
	Failed      int
}

type Collector interface {
	Start(goroutines int)
	AddPly()
	AddMatch(metric MatchMetric)
	AddFailure()
	Complete() Summary
}

type collector struct {
	goroutines  int
	startTime   time.Time
	matches     atomic.Int32
	plies       atomic.Int64
	complete    atomic.Int32
	unsupported atomic.Int32
	failed      atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *collector) AddPly() {
	m.plies.Add(1)
}

func (m *collector) AddMatch(metric MatchMetric) {
	m.matches.Add(1)
	if metric.Complete {
		m.complete.Add(1)
	}
	if metric.Unsupported {
		m.unsupported.Add(1)
	}
}

func (m *collector) AddFailure() {
	m.failed.Add(1)
}

func (m *collector) Complete() Summary {
	return Summary{
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Matches:     int(m.matches.Load()),
		Plies:       int(m.plies.Load()),
		Complete:    int(m.complete.Load()),
		Unsupported: int(m.unsupported.Load()),
		Failed:      int(m.failed.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)        {}
func (m *dummyCollector) AddPly()                     {}
func (m *dummyCollector) AddMatch(metric MatchMetric) {}
func (m *dummyCollector) AddFailure()                 {}
func (m *dummyCollector) Complete() Summary           { return Summary{} }
