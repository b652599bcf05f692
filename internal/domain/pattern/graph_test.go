package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxinglabs/bazi-pattern-engine/internal/domain/errors"
)

func TestTopologicalSort(t *testing.T) {
	g := NewDependencyGraph()
	g.AddEdge("root", "mid")
	g.AddEdge("root", "leaf")
	g.AddEdge("mid", "leaf")
	g.AddNode("solo")

	ordered, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, ordered, 4)

	index := make(map[string]int, len(ordered))
	for i, id := range ordered {
		index[id] = i
	}
	assert.Less(t, index["root"], index["mid"])
	assert.Less(t, index["mid"], index["leaf"])

	// Deterministic across calls.
	again, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, ordered, again)
}

func TestTopologicalSortCycleWitness(t *testing.T) {
	g := NewDependencyGraph()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	g.AddNode("free")

	ordered, err := g.TopologicalSort()
	require.Error(t, err)
	assert.Nil(t, ordered)
	assert.True(t, errors.IsType(err, errors.ErrorTypeCatalog))
	assert.Equal(t, []string{"a", "b", "c"}, errors.CycleNodes(err))
}
