package policyfile

import (
	"fmt"

	"github.com/sandglass-dev/sandglass-sdk/domain/entities"
	sderrors "github.com/sandglass-dev/sandglass-sdk/domain/errors"
	"github.com/sandglass-dev/sandglass-sdk/domain/identity"
	"github.com/sandglass-dev/sandglass-sdk/domain/policy"
)

// Resolver maps a subject name from a policy document to the identity key of
// the class or object it denotes.
type Resolver interface {
	Resolve(name string) (identity.Key, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (identity.Key, error)

func (f ResolverFunc) Resolve(name string) (identity.Key, error) {
	return f(name)
}

// Apply authors a loaded document into store. Flat lists and the exec gate
// apply directly; each rule entry runs through the Store's authoring
// validation, so an entry that names a subject without granting anything
// surfaces the underlying ConfigurationError.
func Apply(doc *Document, store *policy.Store, resolver Resolver) error {
	if doc.Exec {
		store.AllowExec()
	}
	store.AllowGlobalRead(doc.Globals.Read...).
		AllowGlobalWrite(doc.Globals.Write...).
		AllowConstRead(doc.Constants.Read...).
		AllowConstWrite(doc.Constants.Write...)

	for i, entry := range doc.Rules {
		category, err := parseCategory(entry.Category)
		if err != nil {
			return &sderrors.PolicyFileError{Err: err, Field: fmt.Sprintf("rules[%d].category", i)}
		}
		key, err := resolver.Resolve(entry.Subject)
		if err != nil {
			return &sderrors.PolicyFileError{Err: err, Field: fmt.Sprintf("rules[%d].subject", i)}
		}
		err = store.WithRule(func(s *policy.Store) {
			r := s.RuleFor(key, category)
			if entry.All {
				r.AllowAll()
			}
			r.Allow(entry.Methods...)
		})
		if err != nil {
			return &sderrors.PolicyFileError{Err: err, Field: fmt.Sprintf("rules[%d]", i)}
		}
	}
	return nil
}

func parseCategory(name string) (entities.RuleCategory, error) {
	for _, c := range entities.Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown rule category %q", name)
}
