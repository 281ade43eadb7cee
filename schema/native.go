package schema

// Secret is a string whose Var should render as a password field in any UI
// builder. It mirrors the Python source's `class Secret(str)` marker type.
type Secret string

// ModelHandle is the Go stand-in for the Python source's `Model` sentinel
// type: a parameter or return value of this type always maps to a Var of
// Kind "model", never to a structural type.
type ModelHandle struct{}
