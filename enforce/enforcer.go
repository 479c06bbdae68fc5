// Package enforce provides the interceptor-side boundary over the policy
// core. An Enforcer builds decision requests from the guest subject model,
// consults a Decider, and converts denials into SecurityViolationError —
// the raise the decision core itself never performs.
package enforce

import (
	"log/slog"

	"github.com/sandglass-dev/sandglass-sdk/domain/entities"
	"github.com/sandglass-dev/sandglass-sdk/domain/errors"
	"github.com/sandglass-dev/sandglass-sdk/domain/ports"
	"github.com/sandglass-dev/sandglass-sdk/domain/subject"
)

// enforcerConfig holds configuration for an Enforcer.
type enforcerConfig struct {
	logger *slog.Logger
}

// Option configures an Enforcer.
type Option func(*enforcerConfig)

// WithLogger sets the structured logger for denial reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(c *enforcerConfig) {
		c.logger = logger
	}
}

// Enforcer guards sensitive operations for untrusted code. Each method
// returns nil when the operation is permitted and a *SecurityViolationError
// when it is denied; the caller must abort the operation on error.
type Enforcer struct {
	decider ports.Decider
	logger  *slog.Logger
}

// New creates an Enforcer over a Decider, typically a *policy.Store.
func New(decider ports.Decider, opts ...Option) *Enforcer {
	cfg := enforcerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Enforcer{decider: decider, logger: cfg.logger}
}

// Call checks a method invocation on obj. The runtime class, its ancestor
// chain, and the class owning the resolved implementation are taken from the
// subject model. A method that does not resolve anywhere in the chain is
// denied like any other unpermitted call.
func (e *Enforcer) Call(obj *subject.Object, method string) error {
	class := obj.Class()
	owner := class.ResolveMethod(method)
	if owner == nil {
		return e.violation("call", class.Name(), method)
	}
	req := entities.CallRequest{
		Target:    obj.Key(),
		Ancestors: class.Ancestors(),
		Owner:     owner.Key(),
		Method:    method,
	}
	if e.decider.CheckCall(req) {
		return nil
	}
	return e.violation("call", class.Name(), method)
}

// ReadGlobal checks a read of the named global variable.
func (e *Enforcer) ReadGlobal(name string) error {
	if e.decider.CheckGlobal(entities.GlobalRequest{Name: name, Access: entities.AccessRead}) {
		return nil
	}
	return e.violation("global", "", name)
}

// WriteGlobal checks a write of the named global variable.
func (e *Enforcer) WriteGlobal(name string) error {
	if e.decider.CheckGlobal(entities.GlobalRequest{Name: name, Access: entities.AccessWrite}) {
		return nil
	}
	return e.violation("global", "", name)
}

// ReadConst checks a read of the constant at the normalized qualified path.
func (e *Enforcer) ReadConst(path string) error {
	if e.decider.CheckConst(entities.ConstRequest{Path: path, Access: entities.AccessRead}) {
		return nil
	}
	return e.violation("const", "", path)
}

// WriteConst checks a write of the constant at the normalized qualified path.
func (e *Enforcer) WriteConst(path string) error {
	if e.decider.CheckConst(entities.ConstRequest{Path: path, Access: entities.AccessWrite}) {
		return nil
	}
	return e.violation("const", "", path)
}

// Exec checks a shell or external-process action.
func (e *Enforcer) Exec(command string) error {
	if e.decider.CheckExec(entities.ExecRequest{Command: command}) {
		return nil
	}
	return e.violation("exec", "", command)
}

func (e *Enforcer) violation(kind, subjectName, action string) error {
	e.logger.Warn("security violation",
		slog.String("kind", kind),
		slog.String("subject", subjectName),
		slog.String("action", action),
	)
	return &errors.SecurityViolationError{Kind: kind, Subject: subjectName, Action: action}
}
