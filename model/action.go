package model

import (
	"github.com/neria05/fury/graph"
	"github.com/neria05/fury/prompt"
)

// Action binds a model id, model parameters, and a template body to a
// Provider call, the Go counterpart of the source's `Model` class —
// constructed from `(model_id, model_params, template_body,
// output_projection_map)` per spec.md §6, except the output projection
// is carried on the wrapping Node's own Outputs (their Loc), not stored
// here, since that is exactly what graph.Node.Call already does for
// every node kind.
type Action struct {
	CollectionName string
	ModelID        string
	ModelParams    map[string]any
	Template       TemplateBody
	Provider       Provider
	Credentials    any
	Description    string
}

// Fn renders a's template against a node's bound input data and
// dispatches to a's Provider, returning the provider's raw response as
// the node's payload. It satisfies graph.Fn, so an Action becomes a
// Node's callable body exactly like any programmatic action's fn.
func (a *Action) Fn() graph.Fn {
	return func(data map[string]any) (any, error) {
		inputs := map[string]any{"model_params": a.ModelParams}

		if a.Template.IsChat() {
			rendered := make([]Message, len(a.Template.Messages))
			for i, m := range a.Template.Messages {
				text, err := prompt.Render(m.Template, data)
				if err != nil {
					return nil, err
				}
				rendered[i] = Message{Role: m.Role, Template: text}
			}
			inputs["messages"] = rendered
		} else {
			text, err := prompt.Render(a.Template.Text, data)
			if err != nil {
				return nil, err
			}
			inputs["prompt"] = text
		}

		return a.Provider(a.Credentials, a.ModelID, inputs)
	}
}
