package subject_test

import (
	"testing"

	"github.com/sandglass-dev/sandglass-sdk/domain/identity"
	"github.com/sandglass-dev/sandglass-sdk/domain/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClass_Ancestors(t *testing.T) {
	reg := identity.NewRegistry()
	base := subject.NewClass(reg, "Base", nil)
	mid := subject.NewClass(reg, "Mid", base)
	leaf := subject.NewClass(reg, "Leaf", mid)

	chain := leaf.Ancestors()
	require.Len(t, chain, 3)
	assert.Equal(t, leaf.Key(), chain[0], "chain starts at the class itself")
	assert.Equal(t, mid.Key(), chain[1])
	assert.Equal(t, base.Key(), chain[2])

	assert.Equal(t, []identity.Key{base.Key()}, base.Ancestors())
}

func TestClass_ResolveMethod(t *testing.T) {
	reg := identity.NewRegistry()
	base := subject.NewClass(reg, "Base", nil, "foo", "bar")
	leaf := subject.NewClass(reg, "Leaf", base, "foo") // overrides foo

	assert.Same(t, leaf, leaf.ResolveMethod("foo"), "override resolves to the subclass")
	assert.Same(t, base, leaf.ResolveMethod("bar"), "inherited method resolves to the definer")
	assert.Nil(t, leaf.ResolveMethod("missing"))
}

func TestClass_Define_Chains(t *testing.T) {
	reg := identity.NewRegistry()
	c := subject.NewClass(reg, "C", nil).Define("a").Define("b", "c")

	assert.True(t, c.Owns("a"))
	assert.True(t, c.Owns("c"))
	assert.False(t, c.Owns("d"))
}

func TestObject_Identity(t *testing.T) {
	reg := identity.NewRegistry()
	c := subject.NewClass(reg, "C", nil)
	a := subject.NewObject(reg, c)
	b := subject.NewObject(reg, c)

	assert.Equal(t, c, a.Class())
	assert.NotEqual(t, a.Key(), b.Key(), "instances of one class are distinct subjects")
	assert.NotEqual(t, c.Key(), a.Key())
}
