package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neria05/fury/registry"
)

func TestRegistry_RegisterGetOrder(t *testing.T) {
	r := registry.New[int]()
	r.Register("b", 2)
	r.Register("a", 1)
	r.Register("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, r.Names())
	assert.Equal(t, 3, r.Len())

	v, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestRegistry_ReregisterKeepsPosition(t *testing.T) {
	r := registry.New[string]()
	r.Register("x", "first")
	r.Register("y", "second")
	r.Register("x", "updated")

	assert.Equal(t, []string{"x", "y"}, r.Names())
	v, _ := r.Get("x")
	assert.Equal(t, "updated", v)
}

func TestRegistry_MustGetMissing(t *testing.T) {
	r := registry.New[int]()
	_, err := r.MustGet("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
