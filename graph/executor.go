package graph

import (
	"context"
	"sort"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/flog"
)

// Call runs the Chain to completion (spec.md §4.G): nodes are visited in
// TopoOrder; each node's inputs are assembled from its incoming edges'
// connections (read out of the IR map) plus any initialInputs entry whose
// name matches one of the node's declared fields (a shared input, copied
// in rather than consumed); its projected outputs are then written back
// into the IR map under "<node_id>/<output_name>". Execution is strictly
// sequential — ctx is checked once per node so a cancellation between
// node invocations halts further scheduling rather than aborting one
// already in flight.
func (c *Chain) Call(ctx context.Context, initialInputs map[string]any) (any, map[string]any, error) {
	log := flog.Default()
	ir := make(map[string]any)
	var last any

	for _, nodeID := range c.TopoOrder {
		select {
		case <-ctx.Done():
			return nil, ir, ferrors.NewCancelled(ctx.Err())
		default:
		}

		node := c.Nodes[nodeID]
		data := make(map[string]any)

		log.Debug("processing node", "node_id", nodeID)
		log.Debug("current ir keys", "keys", irKeys(ir))

		for _, edge := range c.Edges {
			if edge.TrgNodeID != nodeID {
				continue
			}
			log.Debug("incoming edge", "src_node_id", edge.SrcNodeID, "trg_node_id", edge.TrgNodeID)
			for _, conn := range edge.Connections {
				key := edge.SrcNodeID + "/" + conn.SrcOutput
				log.Debug("looking for key", "key", key)
				v, ok := ir[key]
				if !ok {
					return nil, ir, ferrors.NewMissingIntermediate(key)
				}
				data[conn.TrgField] = v
			}
		}

		for k, v := range initialInputs {
			if node.HasField(k) {
				data[k] = v
			}
		}

		out, err := node.Call(data, true)
		if err != nil {
			log.Error("node execution failed", "node_id", nodeID, "error", err)
			return nil, ir, err
		}

		if outMap, ok := out.(map[string]any); ok {
			for k, v := range outMap {
				ir[nodeID+"/"+k] = v
			}
		}
		last = out
	}

	return last, ir, nil
}

// irKeys returns ir's keys sorted, for a deterministic debug log line —
// the Go counterpart of the source's `set(full_ir.keys())`, which Python
// itself renders in an unspecified (hash-dependent) order.
func irKeys(ir map[string]any) []string {
	keys := make([]string, 0, len(ir))
	for k := range ir {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
