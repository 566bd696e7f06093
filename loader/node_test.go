package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeNilSafety(t *testing.T) {
	var n *Node
	assert.False(t, n.IsMapping())
	assert.False(t, n.IsSequence())
	assert.False(t, n.IsScalar())
	assert.False(t, n.IsRef())
	assert.False(t, n.IsPureRef())
	assert.Nil(t, n.Field("anything"))
	assert.False(t, n.Has("anything"))
	assert.Zero(t, n.Len())
	assert.Nil(t, n.Resolve())
	assert.Nil(t, n.SortedKeys())
	assert.Equal(t, "<unknown>", n.Location())
}

func TestNodeFieldOrder(t *testing.T) {
	n := &Node{Kind: KindMapping}
	n.addField("zebra", &Node{Kind: KindScalar, Value: "1"})
	n.addField("apple", &Node{Kind: KindScalar, Value: "2"})
	n.addField("zebra", &Node{Kind: KindScalar, Value: "duplicate"})

	// Source order preserved; duplicate keys keep the first occurrence.
	assert.Equal(t, []string{"zebra", "apple"}, n.Keys)
	assert.Equal(t, []string{"apple", "zebra"}, n.SortedKeys())
	assert.Equal(t, "1", n.Field("zebra").Value)
	assert.Equal(t, 2, n.Len())
}

func TestNodeResolve(t *testing.T) {
	target := &Node{Kind: KindMapping, File: "components/schemas/team.yaml", Pointer: "/Team"}
	ref := &Node{Kind: KindMapping, Ref: "./team.yaml#/Team", Target: target}
	ref.addField("$ref", &Node{Kind: KindScalar, Value: ref.Ref})

	assert.Same(t, target, ref.Resolve())
	assert.Same(t, target, target.Resolve())
}

func TestNodeResolveRefChainCycle(t *testing.T) {
	a := &Node{Kind: KindMapping, Ref: "#/B"}
	b := &Node{Kind: KindMapping, Ref: "#/A"}
	a.Target = b
	b.Target = a

	assert.Nil(t, a.Resolve())
}

func TestNodeIsPureRef(t *testing.T) {
	pure := &Node{Kind: KindMapping, Ref: "./team.yaml#/Team"}
	pure.addField("$ref", &Node{Kind: KindScalar, Value: pure.Ref})
	require.True(t, pure.IsPureRef())

	impure := &Node{Kind: KindMapping, Ref: "./team.yaml#/Team"}
	impure.addField("$ref", &Node{Kind: KindScalar, Value: impure.Ref})
	impure.addField("description", &Node{Kind: KindScalar, Value: "extra"})
	assert.True(t, impure.IsRef())
	assert.False(t, impure.IsPureRef())
}

func TestNodeLocation(t *testing.T) {
	n := &Node{File: "paths/teams.yaml", Line: 12, Column: 7}
	assert.Equal(t, "paths/teams.yaml:12:7", n.Location())

	n = &Node{File: "paths/teams.yaml"}
	assert.Equal(t, "paths/teams.yaml", n.Location())
}
