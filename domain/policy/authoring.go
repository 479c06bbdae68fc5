package policy

import (
	"maps"

	"github.com/sandglass-dev/sandglass-sdk/domain/entities"
	"github.com/sandglass-dev/sandglass-sdk/domain/errors"
	"github.com/sandglass-dev/sandglass-sdk/domain/identity"
)

// WithRule runs an authoring block against the Store and validates that it
// declared at least one grant. A block that names a subject (for example by
// calling RuleFor) but attaches no permitted action is treated as an
// authoring mistake and rejected with a ConfigurationError.
//
// The validation compares the store-wide grant total before and after the
// block, so a grant anywhere in the Store counts: Rule.Allow, Rule.AllowAll,
// AllowExec, and the global/const allow sets all satisfy it. The total is
// recomputed by full traversal on each call, never cached.
//
// By default, side effects of a rejected block (such as empty Rules created
// by RuleFor) persist; see WithRollbackOnEmptyBlock.
func (s *Store) WithRule(fn func(*Store)) error {
	before := s.totalGrantCount()
	var snap *storeSnapshot
	if s.cfg.rollbackOnEmptyBlock {
		snap = s.snapshot()
	}
	fn(s)
	if s.totalGrantCount() == before {
		if snap != nil {
			s.restore(snap)
		}
		return &errors.ConfigurationError{Context: "rule block declared no grants"}
	}
	return nil
}

// totalGrantCount sums every grant recorded in the Store: per-rule grant
// counts across all categories, the sizes of the four flat allow sets, and
// the exec gate.
func (s *Store) totalGrantCount() int {
	total := len(s.globalRead) + len(s.globalWrite) + len(s.constRead) + len(s.constWrite)
	if s.execAllowed {
		total++
	}
	for _, m := range s.rules {
		for _, r := range m {
			total += r.GrantCount()
		}
	}
	return total
}

type ruleSnapshot struct {
	names    map[string]struct{}
	allowAll bool
	grants   int
}

type storeSnapshot struct {
	globalRead  map[string]struct{}
	globalWrite map[string]struct{}
	constRead   map[string]struct{}
	constWrite  map[string]struct{}
	execAllowed bool
	rules       [entities.NumCategories]map[identity.Key]ruleSnapshot
}

func (s *Store) snapshot() *storeSnapshot {
	snap := &storeSnapshot{
		globalRead:  maps.Clone(s.globalRead),
		globalWrite: maps.Clone(s.globalWrite),
		constRead:   maps.Clone(s.constRead),
		constWrite:  maps.Clone(s.constWrite),
		execAllowed: s.execAllowed,
	}
	for i, m := range s.rules {
		snap.rules[i] = make(map[identity.Key]ruleSnapshot, len(m))
		for key, r := range m {
			snap.rules[i][key] = ruleSnapshot{
				names:    maps.Clone(r.names),
				allowAll: r.allowAll,
				grants:   r.grants,
			}
		}
	}
	return snap
}

// restore rewinds the Store to a snapshot. Rules that existed before the
// snapshot are restored in place through their original pointers, so handles
// held by the block's caller stay valid; rules created after the snapshot
// are removed.
func (s *Store) restore(snap *storeSnapshot) {
	s.globalRead = snap.globalRead
	s.globalWrite = snap.globalWrite
	s.constRead = snap.constRead
	s.constWrite = snap.constWrite
	s.execAllowed = snap.execAllowed
	for i, m := range s.rules {
		for key, r := range m {
			prev, ok := snap.rules[i][key]
			if !ok {
				delete(m, key)
				continue
			}
			r.names = prev.names
			r.allowAll = prev.allowAll
			r.grants = prev.grants
		}
	}
}
