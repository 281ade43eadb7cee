package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neria05/fury/graph"
)

func TestJSONEmitter_Emit_Compact(t *testing.T) {
	c := buildChain(t, "c1")

	out, err := (graph.JSONEmitter{}).Emit(c)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(out), "\n"))
	assert.Contains(t, string(out), `"id":"c1-node"`)
}

func TestJSONEmitter_Emit_Indented(t *testing.T) {
	c := buildChain(t, "c1")

	out, err := (graph.JSONEmitter{Indent: "  "}).Emit(c)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(out), "\n"))
}
