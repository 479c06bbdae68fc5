// Package identity assigns stable opaque keys to runtime subjects.
// A subject is anything the sandbox declares permissions about: an object
// instance or a class. Keys are unique per Registry for the lifetime of the
// process and are never reused for a different subject.
package identity

import "sync"

// Key is an opaque handle identifying one subject. The zero value means
// "no subject" and is never assigned by a Registry.
type Key uint64

// None is the absent key, used where a request has no subject (for example
// a free-standing global access).
const None Key = 0

// Registry hands out monotonically increasing keys. Two structurally equal
// values passed as distinct pointers receive distinct keys; identity, not
// equality, is what a Key captures.
//
// The registry is safe for concurrent use: subjects may first be seen while
// untrusted code is already executing on multiple workers.
type Registry struct {
	mu   sync.Mutex
	next Key
	keys map[any]Key
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[any]Key)}
}

// KeyOf returns the key for subject, assigning a fresh one on first sight.
// The subject must be comparable and identity-bearing (typically a pointer);
// passing nil panics.
func (r *Registry) KeyOf(subject any) Key {
	if subject == nil {
		panic("identity: nil subject")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[subject]; ok {
		return k
	}
	r.next++
	r.keys[subject] = r.next
	return r.next
}

// Next assigns a fresh key with no associated value. Callers that already
// carry their key (such as subject model nodes) use this instead of KeyOf.
func (r *Registry) Next() Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

// Len reports how many subjects have been registered via KeyOf.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}
