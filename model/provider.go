package model

// Provider is the model-provider contract Fury consumes (spec.md §6): a
// callable registered in a model registry, taking the caller's
// credentials, the model name, and the rendered template inputs, and
// returning the provider's raw response. The engine never parses or
// understands that response beyond a node's own output projection.
type Provider func(credentials any, modelName string, templateInputs map[string]any) (any, error)
