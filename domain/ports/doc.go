// Package ports defines the interfaces between the policy core and its
// consumers. The execution interceptor depends on Decider; hosts plug in a
// DenialHandler for observability.
package ports
