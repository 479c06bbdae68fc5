// Package policy implements the decision core of the sandbox: a Store of
// additive allow-rules authored by the host, and the query procedure the
// execution interceptor consults before every sensitive operation.
//
// The model is default-deny. A Store starts with no grants and every
// decision returns false until the host allows something. Grants compose by
// OR across rule sources; there are no explicit deny entries and no
// revocation within a session. Hosts that need scoped policies build a fresh
// Store per session.
//
// Authoring is expected to be single-threaded and to finish before untrusted
// execution begins. After that the Store must be treated as read-only; the
// query methods are then safe for concurrent use from multiple workers.
package policy
