package graph

import (
	"encoding/json"

	"github.com/neria05/fury/ferrors"
)

// Chain is a DAG of Nodes and Edges with a cached topological order,
// read-only once constructed (spec.md §5).
type Chain struct {
	ID        string
	Nodes     map[string]*Node
	NodeOrder []string // declaration order, for deterministic wire output
	Edges     []*Edge
	TopoOrder []string
}

// NewChain builds a Chain, running Kahn's algorithm over edges and
// requiring every id the sort produces to resolve against nodes
// (spec.md §4.F).
func NewChain(id string, nodes []*Node, edges []*Edge) (*Chain, error) {
	nodeMap := make(map[string]*Node, len(nodes))
	order := make([]string, 0, len(nodes))
	for _, n := range nodes {
		nodeMap[n.ID] = n
		order = append(order, n.ID)
	}

	topo, err := topologicalSort(edges)
	if err != nil {
		return nil, err
	}
	for _, nodeID := range topo {
		if _, ok := nodeMap[nodeID]; !ok {
			return nil, ferrors.NewMissingNode(nodeID)
		}
	}

	return &Chain{
		ID:        id,
		Nodes:     nodeMap,
		NodeOrder: order,
		Edges:     edges,
		TopoOrder: topo,
	}, nil
}

// topologicalSort implements Kahn's algorithm exactly as the source's
// topological_sort/edge_array_to_adjacency_list do: the adjacency list
// only has entries for nodes that source at least one edge, the FIFO
// queue is seeded (in adjacency-list insertion order) with zero-in-degree
// source nodes, and a node reached only as a target is swept in once its
// in-degree hits zero. Terminal nodes (popped with no outgoing edges) are
// tallied separately and added to the expected emitted length, since they
// are never themselves a key of the adjacency list.
func topologicalSort(edges []*Edge) ([]string, error) {
	var adjOrder []string
	adj := map[string][]string{}
	inDegree := map[string]int{}

	for _, e := range edges {
		if _, ok := adj[e.SrcNodeID]; !ok {
			adj[e.SrcNodeID] = nil
			adjOrder = append(adjOrder, e.SrcNodeID)
		}
		adj[e.SrcNodeID] = append(adj[e.SrcNodeID], e.TrgNodeID)
		inDegree[e.TrgNodeID]++
	}

	var queue []string
	for _, n := range adjOrder {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	var sorted []string
	terminalCount := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		sorted = append(sorted, node)

		neighbours := adj[node]
		if len(neighbours) == 0 {
			terminalCount++
		}
		for _, nb := range neighbours {
			inDegree[nb]--
			if inDegree[nb] == 0 {
				queue = append(queue, nb)
			}
		}
	}

	if len(sorted) != len(adj)+terminalCount {
		return nil, ferrors.NewNotDAG()
	}
	return sorted, nil
}

type chainWire struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// MarshalJSON emits the Chain wire shape required by spec.md §6, in
// node-declaration order.
func (c *Chain) MarshalJSON() ([]byte, error) {
	w := chainWire{Nodes: make([]*Node, 0, len(c.NodeOrder)), Edges: c.Edges}
	for _, id := range c.NodeOrder {
		w.Nodes = append(w.Nodes, c.Nodes[id])
	}
	return json.Marshal(w)
}
