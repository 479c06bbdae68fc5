package policy_test

import (
	"testing"

	"github.com/sandglass-dev/sandglass-sdk/domain/entities"
	"github.com/sandglass-dev/sandglass-sdk/domain/identity"
	"github.com/sandglass-dev/sandglass-sdk/domain/policy"
	"github.com/stretchr/testify/assert"
)

// classChain is a minimal stand-in for a guest class hierarchy: index 0 is
// the runtime class, ascending toward the root.
func classChain(reg *identity.Registry, depth int) []identity.Key {
	keys := make([]identity.Key, depth)
	for i := range keys {
		keys[i] = reg.Next()
	}
	return keys
}

func TestCheckCall_ObjectRule(t *testing.T) {
	s := newQuietStore()
	reg := identity.NewRegistry()
	chain := classChain(reg, 1)
	target := reg.Next()
	other := reg.Next()

	s.RuleFor(target, entities.CategoryObject).Allow("foo")

	req := entities.CallRequest{Target: target, Ancestors: chain, Owner: chain[0], Method: "foo"}
	assert.True(t, s.CheckCall(req))

	req.Target = other
	assert.False(t, s.CheckCall(req), "object rules bind to the exact instance")

	req.Target = target
	req.Method = "bar"
	assert.False(t, s.CheckCall(req))
}

func TestCheckCall_InstancesOf_InheritanceTransitive(t *testing.T) {
	s := newQuietStore()
	reg := identity.NewRegistry()

	base := reg.Next()
	mid := reg.Next()
	leaf := reg.Next()
	obj := reg.Next()

	// Grant on the base class; method owned by the base class.
	s.RuleFor(base, entities.CategoryInstancesOf).Allow("foo")

	// Exact type.
	assert.True(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{base}, Owner: base, Method: "foo",
	}))

	// Descendant two levels down, no override: still permitted.
	assert.True(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{leaf, mid, base}, Owner: base, Method: "foo",
	}))

	// Even an overriding implementation is covered: instances-of ignores the
	// owner entirely.
	assert.True(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{leaf, mid, base}, Owner: leaf, Method: "foo",
	}))

	// Unrelated chain: denied.
	assert.False(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{mid, leaf}, Owner: mid, Method: "foo",
	}))
}

func TestCheckCall_OwnMethodsOf_InheritanceOpaque(t *testing.T) {
	s := newQuietStore()
	reg := identity.NewRegistry()

	base := reg.Next()
	sub := reg.Next()
	obj := reg.Next()

	s.RuleFor(base, entities.CategoryOwnMethodsOf).Allow("foo")

	// Subclass instance, inherited implementation: the owner is the base
	// class, so the grant applies.
	assert.True(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{sub, base}, Owner: base, Method: "foo",
	}))

	// Subclass overrides foo: the owner is the subclass and the grant aimed
	// at the base class does not cover it, even though the instance is-a
	// base.
	assert.False(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{sub, base}, Owner: sub, Method: "foo",
	}))
}

func TestCheckCall_AnySourceSuffices(t *testing.T) {
	reg := identity.NewRegistry()
	base := reg.Next()
	obj := reg.Next()
	req := entities.CallRequest{Target: obj, Ancestors: []identity.Key{base}, Owner: base, Method: "foo"}

	tests := []struct {
		name  string
		setup func(s *policy.Store)
	}{
		{"object rule", func(s *policy.Store) {
			s.RuleFor(obj, entities.CategoryObject).Allow("foo")
		}},
		{"instances-of rule", func(s *policy.Store) {
			s.RuleFor(base, entities.CategoryInstancesOf).Allow("foo")
		}},
		{"own-methods-of rule", func(s *policy.Store) {
			s.RuleFor(base, entities.CategoryOwnMethodsOf).Allow("foo")
		}},
		{"allow-all object rule", func(s *policy.Store) {
			s.RuleFor(obj, entities.CategoryObject).AllowAll()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietStore()
			assert.False(t, s.CheckCall(req))
			tt.setup(s)
			assert.True(t, s.CheckCall(req))
		})
	}
}

func TestCheckCall_EmptyMethodPanics(t *testing.T) {
	s := newQuietStore()
	assert.Panics(t, func() {
		s.CheckCall(entities.CallRequest{Target: 1, Method: ""})
	})
}

func TestCheckCall_EmptyRuleGrantsNothing(t *testing.T) {
	s := newQuietStore()
	reg := identity.NewRegistry()
	obj := reg.Next()
	base := reg.Next()

	// Lazily created, never granted anything.
	s.RuleFor(obj, entities.CategoryObject)

	assert.False(t, s.CheckCall(entities.CallRequest{
		Target: obj, Ancestors: []identity.Key{base}, Owner: base, Method: "foo",
	}))
}
