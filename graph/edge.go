package graph

import "encoding/json"

// Connection names one source output and the target field it feeds,
// the Go counterpart of a Python `(src, trg)` connection tuple.
type Connection struct {
	SrcOutput string
	TrgField  string
}

// Edge is a directed connection from one node's outputs to another
// node's fields, carrying one or more named Connections.
type Edge struct {
	SrcNodeID   string
	TrgNodeID   string
	Connections []Connection
}

// NewEdge builds an Edge from its source/target node ids and connections.
func NewEdge(srcNodeID, trgNodeID string, connections ...Connection) *Edge {
	return &Edge{SrcNodeID: srcNodeID, TrgNodeID: trgNodeID, Connections: connections}
}

type edgeWire struct {
	SrcNodeID   string      `json:"src_node_id"`
	TrgNodeID   string      `json:"trg_node_id"`
	Connections [][2]string `json:"connections"`
}

// MarshalJSON emits the Edge wire shape required by spec.md §6.
func (e *Edge) MarshalJSON() ([]byte, error) {
	w := edgeWire{SrcNodeID: e.SrcNodeID, TrgNodeID: e.TrgNodeID}
	for _, c := range e.Connections {
		w.Connections = append(w.Connections, [2]string{c.SrcOutput, c.TrgField})
	}
	return json.Marshal(w)
}
