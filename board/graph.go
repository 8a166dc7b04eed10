package board

import (
	"fmt"

	"gamepack/game"
	"golang.org/x/exp/slices"
)

// Edge is an edge as stored in the adjacency list of From.
type Edge struct {
	From int
	To   int
}

// Graph is a board made of nodes joined by undirected edges, stored as
// adjacency lists. Nodes and edges get coloured by players.
type Graph struct {
	Edges       [][]int
	Shapes      []string
	colours     map[int]game.Player
	edgeColours map[Edge]game.Player
}

func NewGraph(edges [][]int, shapes []string) (*Graph, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: a graph needs at least one node", game.ErrInvalidBoardDimensions)
	}
	if len(shapes) != len(edges) {
		return nil, fmt.Errorf("%w: %d shapes given for %d nodes",
			game.ErrInvalidBoardDimensions, len(shapes), len(edges))
	}
	for n, adjs := range edges {
		for _, m := range adjs {
			if m < 0 || m >= len(edges) || m == n {
				return nil, fmt.Errorf("%w: invalid edge %d-%d", game.ErrInvalidBoardDimensions, n, m)
			}
		}
	}
	return &Graph{
		Edges:       edges,
		Shapes:      shapes,
		colours:     make(map[int]game.Player),
		edgeColours: make(map[Edge]game.Player),
	}, nil
}

// Clone copies the colouring. Edges and shapes never change during a match,
// so they are shared.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Edges:       g.Edges,
		Shapes:      g.Shapes,
		colours:     make(map[int]game.Player, len(g.colours)),
		edgeColours: make(map[Edge]game.Player, len(g.edgeColours)),
	}
	for k, v := range g.colours {
		clone.colours[k] = v
	}
	for k, v := range g.edgeColours {
		clone.edgeColours[k] = v
	}
	return clone
}

func (g *Graph) Size() int {
	return len(g.Edges)
}

// Connected checks the edge in both storage directions.
func (g *Graph) Connected(n1, n2 int) bool {
	return slices.Contains(g.Edges[n1], n2) || slices.Contains(g.Edges[n2], n1)
}

func (g *Graph) Colour(node int) (game.Player, bool) {
	p, ok := g.colours[node]
	return p, ok
}

// Paint colours node for player in place, along with every edge joining it to
// a node already coloured by the same player.
func (g *Graph) Paint(node int, player game.Player) {
	g.colours[node] = player
	for _, n2 := range g.Edges[node] {
		if g.colours[n2] == player {
			g.edgeColours[Edge{From: node, To: n2}] = player
		}
	}
	for n1, adjs := range g.Edges {
		if n1 != node && g.colours[n1] == player && slices.Contains(adjs, node) {
			g.edgeColours[Edge{From: n1, To: node}] = player
		}
	}
}

// EdgeColour returns the owner of the stored edge, if coloured.
func (g *Graph) EdgeColour(e Edge) (game.Player, bool) {
	p, ok := g.edgeColours[e]
	return p, ok
}

// Uncoloured lists the nodes without a colour in ascending order.
func (g *Graph) Uncoloured() []int {
	var nodes []int
	for n := range g.Edges {
		if _, ok := g.colours[n]; !ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Colours returns a copy of the node colouring.
func (g *Graph) Colours() map[int]game.Player {
	colours := make(map[int]game.Player, len(g.colours))
	for k, v := range g.colours {
		colours[k] = v
	}
	return colours
}

// EdgeColours returns a copy of the edge colouring.
func (g *Graph) EdgeColours() map[Edge]game.Player {
	colours := make(map[Edge]game.Player, len(g.edgeColours))
	for k, v := range g.edgeColours {
		colours[k] = v
	}
	return colours
}
