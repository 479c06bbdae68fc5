package policy

import (
	"fmt"

	"github.com/sandglass-dev/sandglass-sdk/domain/entities"
	"github.com/sandglass-dev/sandglass-sdk/domain/identity"
	"github.com/sandglass-dev/sandglass-sdk/domain/ports"
)

// storeConfig holds configuration for a Store.
type storeConfig struct {
	denialHandler        ports.DenialHandler
	rollbackOnEmptyBlock bool
}

func defaultStoreConfig() storeConfig {
	return storeConfig{
		denialHandler: &StderrDenialHandler{},
	}
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

// WithDenialHandler sets the handler invoked on every denied decision.
func WithDenialHandler(h ports.DenialHandler) StoreOption {
	return func(c *storeConfig) {
		c.denialHandler = h
	}
}

// WithRollbackOnEmptyBlock makes WithRule restore the Store to its pre-block
// state when the block is rejected for declaring no grants. The default
// keeps partial side effects of the failed block, matching additive
// authoring semantics.
func WithRollbackOnEmptyBlock(enabled bool) StoreOption {
	return func(c *storeConfig) {
		c.rollbackOnEmptyBlock = enabled
	}
}

// Store holds an authored sandbox policy: flat allow-sets for global and
// constant access, the exec gate, and one identity-keyed rule map per rule
// category. Absence of an entry always means denial.
//
// Mutators return the Store so authoring calls chain. They are not safe for
// use concurrently with queries; authoring must complete before untrusted
// execution starts.
type Store struct {
	cfg storeConfig

	globalRead  map[string]struct{}
	globalWrite map[string]struct{}
	constRead   map[string]struct{}
	constWrite  map[string]struct{}
	execAllowed bool

	rules [entities.NumCategories]map[identity.Key]*Rule
}

// NewStore creates an empty Store that denies everything.
func NewStore(opts ...StoreOption) *Store {
	cfg := defaultStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Store{
		cfg:         cfg,
		globalRead:  make(map[string]struct{}),
		globalWrite: make(map[string]struct{}),
		constRead:   make(map[string]struct{}),
		constWrite:  make(map[string]struct{}),
	}
	for i := range s.rules {
		s.rules[i] = make(map[identity.Key]*Rule)
	}
	return s
}

// AllowExec opens the store-wide gate for shell and external-process style
// actions.
func (s *Store) AllowExec() *Store {
	s.execAllowed = true
	return s
}

// AllowGlobalRead permits reading the named global variables.
func (s *Store) AllowGlobalRead(names ...string) *Store {
	addAll(s.globalRead, names)
	return s
}

// AllowGlobalWrite permits writing the named global variables.
func (s *Store) AllowGlobalWrite(names ...string) *Store {
	addAll(s.globalWrite, names)
	return s
}

// AllowConstRead permits reading the named constants. Names are normalized
// fully-qualified paths and match exactly.
func (s *Store) AllowConstRead(paths ...string) *Store {
	addAll(s.constRead, paths)
	return s
}

// AllowConstWrite permits writing the named constants.
func (s *Store) AllowConstWrite(paths ...string) *Store {
	addAll(s.constWrite, paths)
	return s
}

// RuleFor returns the Rule for the given subject and category, creating and
// storing an empty Rule on first reference. Repeat calls with the same
// arguments return the identical Rule, never a copy. An invalid category or
// the None key is a programming error and panics.
func (s *Store) RuleFor(key identity.Key, category entities.RuleCategory) *Rule {
	if !category.Valid() {
		panic(fmt.Sprintf("policy: invalid rule category %d", int(category)))
	}
	if key == identity.None {
		panic("policy: rule subject has no identity")
	}
	m := s.rules[category]
	if r, ok := m[key]; ok {
		return r
	}
	r := newRule()
	m[key] = r
	return r
}

func addAll(set map[string]struct{}, names []string) {
	for _, name := range names {
		set[name] = struct{}{}
	}
}

func (s *Store) deny(kind string, request any, reason string) bool {
	s.cfg.denialHandler.OnDenial(kind, request, reason)
	return false
}
