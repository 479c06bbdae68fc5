// Package entities provides the core domain types of the policy engine:
// rule categories, access modes, and the runtime request shapes the
// interceptor submits for a decision.
package entities
