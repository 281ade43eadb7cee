// Package prompt infers a Var schema from a prompt template's free
// variables (spec.md §4.C). Fury's template dialect is Go's own
// text/template rather than a ported jinja2 grammar: both support
// iteration, conditionals, and pipelines without arbitrary expression
// evaluation, so text/template's own parser already matches the
// spec's restricted-dialect requirement.
package prompt

import (
	"text/template"
	"text/template/parse"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/schema"
)

// varInfo accumulates what a walk of the template body has learned about
// one free variable (or, recursively, one of its nested fields).
type varInfo struct {
	kind     schema.Kind
	isArray  bool
	itemInfo *varInfo
	children map[string]*varInfo
	order    []string
}

func newVarInfo() *varInfo { return &varInfo{kind: schema.KindString} }

func (v *varInfo) child(name string) *varInfo {
	if v.children == nil {
		v.children = map[string]*varInfo{}
	}
	c, ok := v.children[name]
	if !ok {
		c = newVarInfo()
		v.children[name] = c
		v.order = append(v.order, name)
	}
	return c
}

type usageCtx int

const (
	ctxPrint usageCtx = iota
	ctxBool
	ctxSeq
)

var comparisonFuncs = map[string]bool{
	"eq": true, "ne": true, "lt": true, "le": true, "gt": true, "ge": true,
}

type inferer struct {
	top *varInfo
}

// InferVars parses src in Fury's template dialect and returns a Var for
// each free variable it references, mirroring jtype_to_vars: a variable's
// kind is inferred from how the template uses it — bare print or unknown
// usage defaults to string, an if/with condition implies boolean, a
// comparison against a number literal implies number, ranging over a
// value implies array, and dotted field access implies a named object
// property. If src fails to parse, the original parse error is wrapped
// behind a user-visible TemplateParseError diagnostic.
func InferVars(src string) ([]*schema.Var, error) {
	tmpl, err := template.New("").Parse(src)
	if err != nil {
		return nil, ferrors.NewTemplateParseError(err)
	}

	inf := &inferer{top: newVarInfo()}
	for _, tt := range tmpl.Templates() {
		if tt.Tree == nil || tt.Tree.Root == nil {
			continue
		}
		inf.walkList(tt.Tree.Root, inf.top)
	}
	return inf.vars(), nil
}

func (inf *inferer) vars() []*schema.Var {
	out := make([]*schema.Var, 0, len(inf.top.order))
	for _, name := range inf.top.order {
		out = append(out, convert(name, inf.top.children[name]))
	}
	return out
}

func convert(name string, v *varInfo) *schema.Var {
	switch {
	case len(v.order) > 0:
		fields := make([]*schema.Var, 0, len(v.order))
		for _, childName := range v.order {
			fields = append(fields, convert(childName, v.children[childName]))
		}
		return &schema.Var{Type: schema.KindObject, Name: name, Required: true, AdditionalProperties: fields}
	case v.isArray:
		item := v.itemInfo
		if item == nil {
			item = newVarInfo()
		}
		return &schema.Var{Type: schema.KindArray, Name: name, Required: true, Items: []*schema.Var{convert("", item)}}
	default:
		return &schema.Var{Type: v.kind, Name: name, Required: true}
	}
}

func (inf *inferer) resolve(ident []string, scope *varInfo) *varInfo {
	cur := scope
	for _, seg := range ident {
		cur = cur.child(seg)
	}
	return cur
}

func (inf *inferer) walkList(n *parse.ListNode, scope *varInfo) {
	if n == nil {
		return
	}
	for _, c := range n.Nodes {
		inf.walkNode(c, scope)
	}
}

func (inf *inferer) walkNode(n parse.Node, scope *varInfo) {
	switch node := n.(type) {
	case *parse.ActionNode:
		inf.walkPipe(node.Pipe, scope, ctxPrint)

	case *parse.IfNode:
		inf.walkPipe(node.Pipe, scope, ctxBool)
		inf.walkList(node.List, scope)
		inf.walkList(node.ElseList, scope)

	case *parse.WithNode:
		targets := inf.walkPipe(node.Pipe, scope, ctxBool)
		inner := scope
		if len(targets) == 1 {
			inner = targets[0]
		}
		inf.walkList(node.List, inner)
		inf.walkList(node.ElseList, scope)

	case *parse.RangeNode:
		targets := inf.walkPipe(node.Pipe, scope, ctxSeq)
		inner := scope
		if len(targets) == 1 {
			t := targets[0]
			t.isArray = true
			if t.itemInfo == nil {
				t.itemInfo = newVarInfo()
			}
			inner = t.itemInfo
		}
		inf.walkList(node.List, inner)
		inf.walkList(node.ElseList, scope)
	}
}

// walkPipe resolves every field reference in p against scope and returns
// the Vars the pipe's final command resolved to — the candidate "target"
// a with/range/if action operates on.
func (inf *inferer) walkPipe(p *parse.PipeNode, scope *varInfo, ctx usageCtx) []*varInfo {
	if p == nil {
		return nil
	}
	var last []*varInfo
	for ci, cmd := range p.Cmds {
		isLast := ci == len(p.Cmds)-1

		hasNumberSibling := false
		for _, a := range cmd.Args {
			if _, ok := a.(*parse.NumberNode); ok {
				hasNumberSibling = true
			}
		}
		isComparison := false
		if len(cmd.Args) > 0 {
			if id, ok := cmd.Args[0].(*parse.IdentifierNode); ok {
				isComparison = comparisonFuncs[id.Ident]
			}
		}

		var resolved []*varInfo
		for _, a := range cmd.Args {
			switch an := a.(type) {
			case *parse.FieldNode:
				v := inf.resolve(an.Ident, scope)
				switch {
				case isComparison && hasNumberSibling:
					v.kind = schema.KindNumber
				case isLast && ctx == ctxBool && len(v.order) == 0 && !v.isArray:
					v.kind = schema.KindBoolean
				}
				resolved = append(resolved, v)
			case *parse.PipeNode:
				inf.walkPipe(an, scope, ctxPrint)
			}
		}
		if isLast {
			last = resolved
		}
	}
	return last
}
