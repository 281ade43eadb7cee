package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/schema"
	"github.com/neria05/fury/signature"
)

type greetParams struct {
	Name    string          `fury:"name,required"`
	Times   int             `fury:"times,default=1"`
	APIKey  signature.Secret `fury:"api_key,secret"`
	private string
	Hidden  string `fury:"hidden_field,hidden"`
}

func TestFields_RequiredDefaultSecretHidden(t *testing.T) {
	vars, err := signature.Fields(greetParams{})
	require.NoError(t, err)
	require.Len(t, vars, 4)

	byName := map[string]*schema.Var{}
	for _, v := range vars {
		byName[v.Name] = v
	}

	name := byName["name"]
	require.NotNil(t, name)
	assert.True(t, name.Required)
	assert.Equal(t, schema.KindString, name.KindOf())

	times := byName["times"]
	require.NotNil(t, times)
	assert.False(t, times.Required)
	assert.Equal(t, "1", times.Placeholder)

	key := byName["api_key"]
	require.NotNil(t, key)
	assert.True(t, key.Password)

	hidden := byName["hidden_field"]
	require.NotNil(t, hidden)
	assert.False(t, hidden.Show)

	_, stillPrivate := byName["private"]
	assert.False(t, stillPrivate)
}

type tupleParams struct {
	Pair struct {
		A string `fury:"a"`
		B int    `fury:"b"`
	} `fury:"pair,tuple"`
}

func TestFields_Tuple(t *testing.T) {
	vars, err := signature.Fields(tupleParams{})
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, schema.KindArray, vars[0].KindOf())
	assert.Len(t, vars[0].Items, 2)
}

func TestFields_UnsupportedKindErrors(t *testing.T) {
	_, err := signature.Fields(map[string]chan int{})
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindUnsupportedType))
}

func TestFields_NonStructErrors(t *testing.T) {
	_, err := signature.Fields(42)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindUnsupportedType))
}

func addOne(_ map[string]any) (int, error) { return 0, nil }

func TestReturns_ScalarPayload(t *testing.T) {
	vars, err := signature.Returns(addOne, 0, []signature.ReturnProjection{
		{Name: "sum", Loc: nil},
	})
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, "sum", vars[0].Name)
	assert.Equal(t, schema.KindNumber, vars[0].KindOf())
}

func choices(_ map[string]any) ([]string, error) { return nil, nil }

func TestReturns_ArrayPayload_SingleNameNamesFirstItem(t *testing.T) {
	vars, err := signature.Returns(choices, []string(nil), []signature.ReturnProjection{
		{Name: "text", Loc: []any{0}},
	})
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, "text", vars[0].Name)
}

type pairResult struct {
	A string `fury:"a"`
	B int    `fury:"b"`
}

func pair(_ map[string]any) (pairResult, error) { return pairResult{}, nil }

func TestReturns_ArityMismatch(t *testing.T) {
	_, err := signature.Returns(pair, pairResult{}, []signature.ReturnProjection{
		{Name: "first"},
		{Name: "second"},
	})
	// pairResult is a plain struct (object), not an array, so a non-array
	// payload always takes exactly one projection name.
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindArityMismatch))

	vars, err := signature.Returns(pair, pairResult{}, []signature.ReturnProjection{
		{Name: "the_pair"},
	})
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, "the_pair", vars[0].Name)
}

func badShape(x int) int { return x }

func TestReturns_InvalidShape(t *testing.T) {
	_, err := signature.Returns(badShape, 0, nil)
	require.Error(t, err)
	assert.True(t, ferrors.Is(err, ferrors.KindInvalidReturnShape))
}

type discountParams struct {
	Amount any `fury:"amount,anyOf=number|string"`
}

func TestFields_AnyOfUnion(t *testing.T) {
	vars, err := signature.Fields(discountParams{})
	require.NoError(t, err)
	require.Len(t, vars, 1)

	amount := vars[0]
	assert.Equal(t, "amount", amount.Name)
	assert.Equal(t, schema.Kind(""), amount.KindOf()) // a union has no single Kind
	union, ok := amount.Type.([]*schema.Var)
	require.True(t, ok)
	require.Len(t, union, 2)
	assert.Equal(t, schema.KindNumber, union[0].Type)
	assert.Equal(t, schema.KindString, union[1].Type)
}

type choiceResult struct {
	Amount any `fury:"amount,anyOf=number|string"`
}

func pickAmount(_ map[string]any) (choiceResult, error) { return choiceResult{}, nil }

func TestReturns_StructPayloadWithAnyOfField(t *testing.T) {
	vars, err := signature.Returns(pickAmount, choiceResult{}, []signature.ReturnProjection{
		{Name: "result"},
	})
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, "result", vars[0].Name)
	assert.Equal(t, schema.KindObject, vars[0].KindOf())

	props, ok := vars[0].AdditionalProperties.([]*schema.Var)
	require.True(t, ok)
	require.Len(t, props, 1)

	union, ok := props[0].Type.([]*schema.Var)
	require.True(t, ok)
	require.Len(t, union, 2)
	assert.Equal(t, schema.KindNumber, union[0].Type)
	assert.Equal(t, schema.KindString, union[1].Type)
}
