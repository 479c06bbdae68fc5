// Package policyfile loads host-authored policy documents and applies them
// to a policy Store. A document is the declarative face of the authoring
// DSL: flat global/constant allow lists, the exec gate, and per-subject rule
// entries. Subject names are resolved to identity keys by the host via the
// Resolver interface; name-to-subject mapping (and any namespace remapping)
// stays outside this package.
package policyfile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	sderrors "github.com/sandglass-dev/sandglass-sdk/domain/errors"
	"gopkg.in/yaml.v3"
)

// validate is a package-level singleton; constructing a validator per call
// is expensive.
var validate = validator.New()

// Document is a versioned policy document.
type Document struct {
	Version   int         `yaml:"version" json:"version" validate:"required,eq=1"`
	Exec      bool        `yaml:"exec,omitempty" json:"exec,omitempty"`
	Globals   AccessLists `yaml:"globals,omitempty" json:"globals,omitempty"`
	Constants AccessLists `yaml:"constants,omitempty" json:"constants,omitempty"`
	Rules     []RuleEntry `yaml:"rules,omitempty" json:"rules,omitempty" validate:"dive"`
}

// AccessLists holds separate read and write allow lists. Granting one
// direction never implies the other.
type AccessLists struct {
	Read  []string `yaml:"read,omitempty" json:"read,omitempty"`
	Write []string `yaml:"write,omitempty" json:"write,omitempty"`
}

// RuleEntry declares grants for one subject in one rule category.
type RuleEntry struct {
	// Subject is the host-defined name the Resolver maps to an identity key.
	Subject string `yaml:"subject" json:"subject" validate:"required"`

	// Category is one of "object", "instances_of", "own_methods_of".
	Category string `yaml:"category" json:"category" validate:"required,oneof=object instances_of own_methods_of"`

	// Methods are the explicitly allowed action names.
	Methods []string `yaml:"methods,omitempty" json:"methods,omitempty"`

	// All permits every action name on the subject.
	All bool `yaml:"all,omitempty" json:"all,omitempty"`
}

// Load parses and validates a YAML policy document.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &sderrors.PolicyFileError{Err: fmt.Errorf("parse: %w", err)}
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, &sderrors.PolicyFileError{Err: fmt.Errorf("validate: %w", err)}
	}
	return &doc, nil
}
