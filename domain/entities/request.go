package entities

import "github.com/sandglass-dev/sandglass-sdk/domain/identity"

// Access distinguishes read from write for global and constant requests.
type Access int

const (
	AccessRead Access = iota
	AccessWrite
)

// String returns "read" or "write".
func (a Access) String() string {
	if a == AccessWrite {
		return "write"
	}
	return "read"
}

// CallRequest represents a runtime request to invoke a method on an object.
//
// Ancestors is the identity chain of the target's runtime class, starting at
// the class itself and walking upward. Owner is the class whose own
// implementation the method resolved to; it is somewhere in Ancestors.
type CallRequest struct {
	Target    identity.Key
	Ancestors []identity.Key
	Owner     identity.Key
	Method    string
}

// GlobalRequest represents a runtime request to read or write a global
// variable.
type GlobalRequest struct {
	Name   string
	Access Access
}

// ConstRequest represents a runtime request to read or write a named
// constant. Path is the normalized fully-qualified name.
type ConstRequest struct {
	Path   string
	Access Access
}

// ExecRequest represents a runtime request to run a shell or external
// process action. The command is carried for denial reporting only; the
// decision is a single store-wide gate.
type ExecRequest struct {
	Command string
}
