// Package colograph implements a competitive graph colouring game: players
// take turns colouring nodes, and every edge joining two nodes of the same
// colour changes that colour's score depending on the shapes it joins.
package colograph

import (
	"fmt"

	"gamepack/board"
	"gamepack/game"
	"golang.org/x/exp/slices"
)

const Identifier = "Colograph"

const (
	Red  game.Player = "Red"
	Blue game.Player = "Blue"
)

var Players = []game.Player{Red, Blue}

var DefaultShapes = []string{"circle", "triangle", "square", "star"}

type Params struct {
	Edges               [][]int  `yaml:"edges"`
	Shapes              []string `yaml:"shapes"`
	ScoreSameShape      int      `yaml:"scoreSameShape"`
	ScoreDifferentShape int      `yaml:"scoreDifferentShape"`
}

func DefaultParams() Params {
	return Params{
		Edges:               [][]int{{1, 3}, {2}, {3}, {}},
		Shapes:              slices.Clone(DefaultShapes),
		ScoreSameShape:      -1,
		ScoreDifferentShape: -1,
	}
}

type State struct {
	graph               *board.Graph
	active              game.Player
	scoreSameShape      int
	scoreDifferentShape int

	moves map[game.Player][]int
}

var (
	_ game.State[*State, int]     = (*State)(nil)
	_ game.Serializable[Snapshot] = (*State)(nil)
)

// New returns the uncoloured graph with Red to move.
func New(params Params) (*State, error) {
	graph, err := board.NewGraph(params.Edges, params.Shapes)
	if err != nil {
		return nil, err
	}
	return &State{
		graph:               graph,
		active:              Red,
		scoreSameShape:      params.ScoreSameShape,
		scoreDifferentShape: params.ScoreDifferentShape,
	}, nil
}

func (s *State) ActivePlayers() []game.Player {
	return []game.Player{s.active}
}

func (s *State) Graph() *board.Graph {
	return s.graph
}

// EdgeColour returns the colour shared by two connected nodes, if any.
func (s *State) EdgeColour(n1, n2 int) (game.Player, bool) {
	if !s.graph.Connected(n1, n2) {
		return "", false
	}
	c1, ok1 := s.graph.Colour(n1)
	c2, ok2 := s.graph.Colour(n2)
	return c1, ok1 && ok2 && c1 == c2
}

func (s *State) Moves() (map[game.Player][]int, error) {
	if s.moves != nil {
		return s.moves, nil
	}
	uncoloured := s.graph.Uncoloured()
	if len(uncoloured) == 0 {
		return nil, nil
	}
	s.moves = map[game.Player][]int{s.active: uncoloured}
	return s.moves, nil
}

// Scores starts every player at the node count and adds the shape score of
// each edge in its colour.
func (s *State) Scores() map[game.Player]int {
	points := make(map[game.Player]int, len(Players))
	for _, p := range Players {
		points[p] = s.graph.Size()
	}
	for n1, adjs := range s.graph.Edges {
		for _, n2 := range adjs {
			owner, ok := s.graph.EdgeColour(board.Edge{From: n1, To: n2})
			if !ok {
				continue
			}
			if s.graph.Shapes[n1] == s.graph.Shapes[n2] {
				points[owner] += s.scoreSameShape
			} else {
				points[owner] += s.scoreDifferentShape
			}
		}
	}
	return points
}

// Result is available once every node is coloured.
func (s *State) Result() (game.Result, error) {
	if len(s.graph.Uncoloured()) > 0 {
		return nil, nil
	}
	points := s.Scores()
	return game.ZeroSum(Players, float64(points[Red]-points[Blue]), Red), nil
}

func (s *State) check(moves map[game.Player]int) error {
	legal, err := s.Moves()
	if err != nil {
		return err
	}
	return game.CheckMoves(legal, moves)
}

func (s *State) Next(moves map[game.Player]int) (*State, error) {
	if err := s.check(moves); err != nil {
		return nil, err
	}
	graph := s.graph.Clone()
	graph.Paint(moves[s.active], s.active)
	return &State{
		graph:               graph,
		active:              game.Opponent(Players, s.active),
		scoreSameShape:      s.scoreSameShape,
		scoreDifferentShape: s.scoreDifferentShape,
	}, nil
}

func (s *State) Update(moves map[game.Player]int) error {
	if err := s.check(moves); err != nil {
		return err
	}
	s.graph.Paint(moves[s.active], s.active)
	s.active = game.Opponent(Players, s.active)
	s.moves = nil
	return nil
}

func (s *State) Hash() game.StateHash {
	h := game.NewHasher().String(string(s.active))
	for n := 0; n < s.graph.Size(); n++ {
		colour, _ := s.graph.Colour(n)
		h.String(string(colour))
	}
	return h.Sum()
}

// Snapshot stores each node's colour as an index into Players, or -1 when
// uncoloured. Edge colours follow from the node colours.
type Snapshot struct {
	Active              game.Player `json:"active"`
	Colours             []int       `json:"colours"`
	Edges               [][]int     `json:"edges"`
	Shapes              []string    `json:"shapes"`
	ScoreSameShape      int         `json:"scoreSameShape"`
	ScoreDifferentShape int         `json:"scoreDifferentShape"`
}

func (s *State) Serialize() Snapshot {
	colours := make([]int, s.graph.Size())
	for n := range colours {
		colour, ok := s.graph.Colour(n)
		colours[n] = -1
		if ok {
			colours[n] = slices.Index(Players, colour)
		}
	}
	return Snapshot{
		Active:              s.active,
		Colours:             colours,
		Edges:               s.graph.Edges,
		Shapes:              s.graph.Shapes,
		ScoreSameShape:      s.scoreSameShape,
		ScoreDifferentShape: s.scoreDifferentShape,
	}
}

func Deserialize(snapshot Snapshot) (*State, error) {
	if !slices.Contains(Players, snapshot.Active) {
		return nil, fmt.Errorf("%w: unknown player %q", game.ErrMalformedNotation, snapshot.Active)
	}
	s, err := New(Params{
		Edges:               snapshot.Edges,
		Shapes:              snapshot.Shapes,
		ScoreSameShape:      snapshot.ScoreSameShape,
		ScoreDifferentShape: snapshot.ScoreDifferentShape,
	})
	if err != nil {
		return nil, err
	}
	if len(snapshot.Colours) != s.graph.Size() {
		return nil, fmt.Errorf("%w: %d colours for %d nodes",
			game.ErrMalformedNotation, len(snapshot.Colours), s.graph.Size())
	}
	for n, colour := range snapshot.Colours {
		switch {
		case colour == -1:
		case colour >= 0 && colour < len(Players):
			s.graph.Paint(n, Players[colour])
		default:
			return nil, fmt.Errorf("%w: colour %d of node %d", game.ErrMalformedNotation, colour, n)
		}
	}
	s.active = snapshot.Active
	return s, nil
}
