package ports

import "github.com/sandglass-dev/sandglass-sdk/domain/entities"

// Decider answers whether a specific runtime operation is permitted. Every
// method is a pure decision: it returns false on denial and never raises.
// The interceptor must consult the Decider before performing any sensitive
// action on behalf of untrusted code, and abort the action itself when the
// answer is false.
type Decider interface {
	CheckCall(req entities.CallRequest) bool
	CheckGlobal(req entities.GlobalRequest) bool
	CheckConst(req entities.ConstRequest) bool
	CheckExec(req entities.ExecRequest) bool
}
