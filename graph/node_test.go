package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/graph"
	"github.com/neria05/fury/schema"
)

func textOutput(name, locKey string) *schema.Var {
	v := schema.String(name)
	v.Loc = []any{locKey}
	return v
}

func TestNode_Call_ProjectsOutputs(t *testing.T) {
	n, err := graph.NewNode("N", graph.Programmatic,
		func(data map[string]any) (any, error) {
			return map[string]any{"text": "alpha-beta"}, nil
		},
		[]*schema.Var{schema.String("url")},
		[]*schema.Var{textOutput("text", "text")},
		"",
	)
	require.NoError(t, err)

	out, err := n.Call(map[string]any{"url": "x"}, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"text": "alpha-beta"}, out)
}

func TestNode_Call_UnknownInputs(t *testing.T) {
	n, err := graph.NewNode("N", graph.Programmatic,
		func(data map[string]any) (any, error) { return nil, nil },
		[]*schema.Var{schema.String("a")},
		nil, "",
	)
	require.NoError(t, err)

	_, err = n.Call(map[string]any{"a": "1", "b": "2"}, true)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindUnknownInputs))
	assert.Contains(t, err.Error(), "b")
}

func TestNode_Call_WrapsFnError(t *testing.T) {
	n, err := graph.NewNode("N", graph.Programmatic,
		func(data map[string]any) (any, error) { return nil, assertErr{} },
		nil, nil, "",
	)
	require.NoError(t, err)

	_, err = n.Call(nil, true)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindNodeExecutionError))
}

func TestNode_Call_NoProjection(t *testing.T) {
	n, err := graph.NewNode("N", graph.Programmatic,
		func(data map[string]any) (any, error) { return "raw", nil },
		nil, []*schema.Var{schema.String("ignored")}, "",
	)
	require.NoError(t, err)

	out, err := n.Call(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "raw", out)
}

func TestNewNode_RejectsUnknownType(t *testing.T) {
	_, err := graph.NewNode("N", graph.Type("bogus"), nil, nil, nil, "")
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindUnsupportedType))
}

func TestNode_HasField(t *testing.T) {
	n, err := graph.NewNode("N", graph.Programmatic, nil,
		[]*schema.Var{schema.String("api_key")}, nil, "")
	require.NoError(t, err)
	assert.True(t, n.HasField("api_key"))
	assert.False(t, n.HasField("other"))
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
