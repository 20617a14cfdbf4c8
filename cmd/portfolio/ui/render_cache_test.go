package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCache_GetOrCompute(t *testing.T) {
	rc := NewRenderCache(2)
	calls := 0
	compute := func() string { calls++; return "out" }

	k := ComputeKey("a", 1, true)
	assert.Equal(t, "out", rc.GetOrCompute(k, compute))
	assert.Equal(t, "out", rc.GetOrCompute(k, compute))
	assert.Equal(t, 1, calls)
}

func TestRenderCache_EvictsOldest(t *testing.T) {
	rc := NewRenderCache(2)
	rc.GetOrCompute(1, func() string { return "one" })
	rc.GetOrCompute(2, func() string { return "two" })
	rc.GetOrCompute(3, func() string { return "three" })

	assert.Equal(t, 2, rc.Len())
	recomputed := false
	rc.GetOrCompute(1, func() string { recomputed = true; return "one" })
	assert.True(t, recomputed)

	rc.Clear()
	assert.Equal(t, 0, rc.Len())
}

func TestComputeKey(t *testing.T) {
	assert.Equal(t, ComputeKey("x", 80, "dark"), ComputeKey("x", 80, "dark"))
	assert.NotEqual(t, ComputeKey("x", 80, "dark"), ComputeKey("x", 80, "light"))
	assert.NotEqual(t, ComputeKey("ab", "c"), ComputeKey("a", "bc"))
}
