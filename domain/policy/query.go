package policy

import (
	"github.com/sandglass-dev/sandglass-sdk/domain/entities"
	"github.com/sandglass-dev/sandglass-sdk/domain/identity"
	"github.com/sandglass-dev/sandglass-sdk/domain/ports"
)

// Ensure the Store satisfies the query interface.
var _ ports.Decider = (*Store)(nil)

// CheckCall decides a method call. The call is permitted iff any of:
//
//  1. an object rule for the exact target instance permits the method;
//  2. an instances-of rule on any class in the runtime ancestor chain
//     permits the method (inheritance-transitive);
//  3. an own-methods-of rule on the class owning the resolved implementation
//     permits the method (inheritance-opaque).
//
// A request with an empty method name is a programming error and panics.
func (s *Store) CheckCall(req entities.CallRequest) bool {
	if req.Method == "" {
		panic("policy: call request without method name")
	}
	if r, ok := s.rules[entities.CategoryObject][req.Target]; ok && r.Permits(req.Method) {
		return true
	}
	for _, ancestor := range req.Ancestors {
		if r, ok := s.rules[entities.CategoryInstancesOf][ancestor]; ok && r.Permits(req.Method) {
			return true
		}
	}
	if req.Owner != identity.None {
		if r, ok := s.rules[entities.CategoryOwnMethodsOf][req.Owner]; ok && r.Permits(req.Method) {
			return true
		}
	}
	return s.deny("call", req, "no rule permits method")
}

// CheckGlobal decides a global variable access by exact name membership in
// the corresponding read or write set.
func (s *Store) CheckGlobal(req entities.GlobalRequest) bool {
	set := s.globalRead
	if req.Access == entities.AccessWrite {
		set = s.globalWrite
	}
	if _, ok := set[req.Name]; ok {
		return true
	}
	return s.deny("global", req, "global "+req.Access.String()+" not allowed")
}

// CheckConst decides a constant access by exact membership of the normalized
// qualified path in the corresponding read or write set.
func (s *Store) CheckConst(req entities.ConstRequest) bool {
	set := s.constRead
	if req.Access == entities.AccessWrite {
		set = s.constWrite
	}
	if _, ok := set[req.Path]; ok {
		return true
	}
	return s.deny("const", req, "constant "+req.Access.String()+" not allowed")
}

// CheckExec decides an exec-style action: permitted iff the store-wide exec
// gate is open.
func (s *Store) CheckExec(req entities.ExecRequest) bool {
	if s.execAllowed {
		return true
	}
	return s.deny("exec", req, "exec not allowed")
}
