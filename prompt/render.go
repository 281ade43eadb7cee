package prompt

import (
	"strings"
	"text/template"

	"github.com/neria05/fury/ferrors"
)

// Render executes src as a Fury template against data, the counterpart
// of jinja2's `Template.render(**data)` used once a node's AI action has
// its actual input values in hand (as opposed to InferVars, which infers
// a schema from the template source alone).
func Render(src string, data map[string]any) (string, error) {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(src)
	if err != nil {
		return "", ferrors.NewTemplateParseError(err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", ferrors.NewTemplateParseError(err)
	}
	return b.String(), nil
}
