package ferrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neria05/fury/ferrors"
)

func TestError_KindAndMessage(t *testing.T) {
	err := ferrors.NewUnknownInputs([]string{"b"})
	assert.Equal(t, ferrors.KindUnknownInputs, err.Kind)
	assert.Contains(t, err.Error(), "b")
}

func TestError_StackIncludesCause(t *testing.T) {
	cause := ferrors.NewNotDAG()
	wrapped := ferrors.NewNodeExecutionError("N", cause)
	assert.Contains(t, wrapped.Stack(), `node "N" failed`)
	assert.Contains(t, wrapped.Stack(), "a cycle exists in the graph")
}

func TestIs(t *testing.T) {
	var err error = ferrors.NewMissingIntermediate("Ghost/y")
	assert.True(t, ferrors.Is(err, ferrors.KindMissingIntermediate))
	assert.False(t, ferrors.Is(err, ferrors.KindNotDAG))
}
