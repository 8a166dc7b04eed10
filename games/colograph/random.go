package colograph

import (
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// RandomGraph builds a connected simple graph. Every node but the last links
// to a random later node, which spans the graph, and the remaining edges are
// drawn from the pairs not yet joined. At least two nodes and nodes-1 edges
// are generated, and no more edges than the complete graph has.
func RandomGraph(nodes, edges int, rng *rand.Rand) [][]int {
	nodes = max(2, nodes)
	edges = min(max(nodes-1, edges), nodes*(nodes-1)/2)

	adjacency := make([][]int, nodes)
	free := make([][]int, nodes)
	for i := 0; i < nodes-1; i++ {
		later := make([]int, 0, nodes-i-1)
		for j := i + 1; j < nodes; j++ {
			later = append(later, j)
		}
		k := rng.Intn(len(later))
		adjacency[i] = []int{later[k]}
		free[i] = slices.Delete(later, k, k+1)
	}
	adjacency[nodes-1] = []int{}

	for extra := edges - (nodes - 1); extra > 0; extra-- {
		var open []int
		for i, f := range free {
			if len(f) > 0 {
				open = append(open, i)
			}
		}
		i := open[rng.Intn(len(open))]
		k := rng.Intn(len(free[i]))
		adjacency[i] = append(adjacency[i], free[i][k])
		free[i] = slices.Delete(free[i], k, k+1)
	}
	return adjacency
}

type RandomParams struct {
	Nodes      int      `yaml:"nodes"`
	Edges      int      `yaml:"edges"`
	ShapeCount int      `yaml:"shapeCount"`
	Shapes     []string `yaml:"shapes"`
}

func DefaultRandomParams() RandomParams {
	return RandomParams{Nodes: 8, Edges: 11, ShapeCount: 4, Shapes: slices.Clone(DefaultShapes)}
}

// RandomGame plays on a random graph with random shapes, rewarding edges that
// join nodes of the same shape.
func RandomGame(params RandomParams, rng *rand.Rand) (*State, error) {
	shapes := params.Shapes
	if len(shapes) == 0 {
		shapes = DefaultShapes
	}
	shapeCount := min(max(1, params.ShapeCount), len(shapes))
	edges := RandomGraph(params.Nodes, params.Edges, rng)
	nodeShapes := make([]string, len(edges))
	for n := range nodeShapes {
		nodeShapes[n] = shapes[rng.Intn(shapeCount)]
	}
	return New(Params{
		Edges:               edges,
		Shapes:              nodeShapes,
		ScoreSameShape:      1,
		ScoreDifferentShape: -1,
	})
}
