// Package config loads declarative chain definitions from storage, the
// Go counterpart of a deployment's YAML workspace manifest: a chain names
// which already-registered nodes participate and how their outputs and
// fields connect, leaving each node's own behavior (its Fn, Fields,
// Outputs) to whatever registered it.
package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/flog"
	"github.com/neria05/fury/graph"
	"github.com/neria05/fury/registry"
)

// ConnectionDef is the wire shape of one graph.Connection.
type ConnectionDef struct {
	Src string `yaml:"src"`
	Trg string `yaml:"trg"`
}

// EdgeDef is the wire shape of one graph.Edge.
type EdgeDef struct {
	Src         string          `yaml:"src"`
	Trg         string          `yaml:"trg"`
	Connections []ConnectionDef `yaml:"connections"`
}

// ChainDef is the declarative shape of a graph.Chain as stored in a
// workspace manifest: the ids of the participating nodes (each already
// registered under that same id) and the edges wiring them together.
// ExpectedHash, when non-zero, content-addresses the chain: the manifest
// asserts what graph.Chain.Hash() of the assembled chain must equal, so a
// drift between the published manifest and the nodes now registered
// (a node's Fields/Outputs changed shape, an edge was edited locally)
// surfaces as a build error instead of silently running a different chain.
type ChainDef struct {
	ID           string    `yaml:"id"`
	NodeIDs      []string  `yaml:"node_ids"`
	Edges        []EdgeDef `yaml:"edges"`
	ExpectedHash uint64    `yaml:"expected_hash,omitempty"`
}

// Build resolves def against nodes and assembles the graph.Chain it
// describes, validating the result as any other chain (acyclic, every
// edge endpoint present) via graph.NewChain, then checking def's content
// hash (if declared) and logging the chain's canonical wire form.
func Build(def *ChainDef, nodes *registry.Registry[*graph.Node]) (*graph.Chain, error) {
	resolved := make([]*graph.Node, 0, len(def.NodeIDs))
	for _, id := range def.NodeIDs {
		n, ok := nodes.Get(id)
		if !ok {
			return nil, ferrors.NewMissingNode(id)
		}
		resolved = append(resolved, n)
	}

	edges := make([]*graph.Edge, 0, len(def.Edges))
	for _, e := range def.Edges {
		conns := make([]graph.Connection, 0, len(e.Connections))
		for _, c := range e.Connections {
			conns = append(conns, graph.Connection{SrcOutput: c.Src, TrgField: c.Trg})
		}
		edges = append(edges, graph.NewEdge(e.Src, e.Trg, conns...))
	}

	chain, err := graph.NewChain(def.ID, resolved, edges)
	if err != nil {
		return nil, err
	}

	actual, err := chain.Hash()
	if err != nil {
		return nil, fmt.Errorf("config: hashing chain %q: %w", def.ID, err)
	}
	if def.ExpectedHash != 0 && actual != def.ExpectedHash {
		return nil, fmt.Errorf("config: chain %q content hash mismatch: manifest declares %d, built chain hashes to %d",
			def.ID, def.ExpectedHash, actual)
	}

	if wire, err := (graph.JSONEmitter{}).Emit(chain); err == nil {
		flog.Default().Debug("built chain", "id", chain.ID, "hash", actual, "wire", string(wire))
	}

	return chain, nil
}

// Load downloads a chain manifest from url via fs, parses it as YAML, and
// builds the graph.Chain it describes against nodes. fs is typically
// afs.New(), the storage-agnostic client used throughout this codebase
// to read a path regardless of whether it is local, s3://, gs://, and so
// on, rather than hard-coding os.ReadFile.
func Load(ctx context.Context, fs afs.Service, url string, nodes *registry.Registry[*graph.Node]) (*graph.Chain, error) {
	content, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("config: reading chain manifest %q: %w", url, err)
	}

	var def ChainDef
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, fmt.Errorf("config: parsing chain manifest %q: %w", url, err)
	}

	return Build(&def, nodes)
}
