// Package errors provides domain-specific error types for the policy core.
// All error types support unwrapping via errors.As() and errors.Is().
package errors

import "fmt"

// ConfigurationError signals an authoring mistake: a rule-declaration block
// named a subject but attached no permitted action.
type ConfigurationError struct {
	Context string
}

func (e *ConfigurationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("policy configuration error: %s", e.Context)
	}
	return "policy configuration error: rule block declared no grants"
}

// SecurityViolationError is the boundary-level failure an interceptor
// returns when a policy decision denies an operation. The policy engine
// itself never produces this error; it only returns decisions.
type SecurityViolationError struct {
	Kind    string // "call", "global", "const", "exec"
	Subject string // class or object description, may be empty
	Action  string // method, global name, constant path, or command
}

func (e *SecurityViolationError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("security violation: %s %q denied on %s", e.Kind, e.Action, e.Subject)
	}
	return fmt.Sprintf("security violation: %s %q denied", e.Kind, e.Action)
}

// PolicyFileError represents a failure loading or applying a policy
// document.
type PolicyFileError struct {
	Err   error
	Field string
}

func (e *PolicyFileError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("policy document error at %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("policy document error: %v", e.Err)
}

func (e *PolicyFileError) Unwrap() error {
	return e.Err
}
