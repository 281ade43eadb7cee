package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neria05/fury/config"
	"github.com/neria05/fury/graph"
	"github.com/neria05/fury/model"
	"github.com/neria05/fury/registry"
	"github.com/neria05/fury/schema"
)

// locOutput builds a string output Var whose Loc projects it out of a
// node's raw {name: value} payload, the same shape graph/node_test.go's
// textOutput helper uses.
func locOutput(name string) *schema.Var {
	v := schema.String(name)
	v.Loc = []any{name}
	return v
}

// TestEndToEnd_ConfigDrivenChainWithAIAction exercises the full wiring
// path a deployment actually uses: a programmatic node feeding a
// model.Action-backed AI node, both registered by id and assembled into
// a graph.Chain purely from a declarative config.ChainDef, then run via
// graph.Chain.Call.
func TestEndToEnd_ConfigDrivenChainWithAIAction(t *testing.T) {
	greet, err := graph.NewNode("Greet", graph.Programmatic,
		func(data map[string]any) (any, error) {
			name, _ := data["name"].(string)
			return map[string]any{"greeting": "Hello " + name}, nil
		},
		[]*schema.Var{schema.String("name")},
		[]*schema.Var{locOutput("greeting")},
		"builds a greeting",
	)
	require.NoError(t, err)

	var providerCalledWith map[string]any
	action := &model.Action{
		ModelID:  "demo-model",
		Template: model.TemplateBody{Text: "Please respond to: {{ .greeting }}"},
		Provider: func(credentials any, modelName string, templateInputs map[string]any) (any, error) {
			providerCalledWith = templateInputs
			return map[string]any{"reply": "Hi yourself!"}, nil
		},
	}

	respond, err := graph.NewNode("Respond", graph.AIPowered, action.Fn(),
		[]*schema.Var{schema.String("greeting")},
		[]*schema.Var{locOutput("reply")},
		"asks the model to respond",
	)
	require.NoError(t, err)

	nodes := registry.New[*graph.Node]()
	nodes.Register("Greet", greet)
	nodes.Register("Respond", respond)

	def := &config.ChainDef{
		ID:      "greet_and_respond",
		NodeIDs: []string{"Greet", "Respond"},
		Edges: []config.EdgeDef{
			{Src: "Greet", Trg: "Respond", Connections: []config.ConnectionDef{
				{Src: "greeting", Trg: "greeting"},
			}},
		},
	}

	chain, err := config.Build(def, nodes)
	require.NoError(t, err)

	out, ir, err := chain.Call(context.Background(), map[string]any{"name": "Ada"})
	require.NoError(t, err)

	assert.Equal(t, "Hello Ada", ir["Greet/greeting"])
	assert.Equal(t, map[string]any{"reply": "Hi yourself!"}, out)
	assert.Equal(t, "Please respond to: Hello Ada", providerCalledWith["prompt"])
}
