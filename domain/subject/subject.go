// Package subject models the guest object system the sandbox mediates:
// classes with single inheritance and a set of directly defined methods, and
// object instances of those classes. The interceptor uses this model to
// compute the ancestor chain and the class owning a resolved method
// implementation, which the policy decision for method calls consumes.
package subject

import "github.com/sandglass-dev/sandglass-sdk/domain/identity"

// Class is a guest class. Each class carries its own identity key, a link to
// its parent (nil for a root class), and the names of the methods defined
// directly on it, as opposed to inherited ones.
type Class struct {
	key    identity.Key
	name   string
	parent *Class
	own    map[string]struct{}
}

// NewClass registers a class with the given parent (nil for a root class)
// and directly defined methods.
func NewClass(reg *identity.Registry, name string, parent *Class, methods ...string) *Class {
	c := &Class{
		key:    reg.Next(),
		name:   name,
		parent: parent,
		own:    make(map[string]struct{}, len(methods)),
	}
	for _, m := range methods {
		c.own[m] = struct{}{}
	}
	return c
}

// Key returns the class's identity key.
func (c *Class) Key() identity.Key { return c.key }

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Parent returns the superclass, or nil for a root class.
func (c *Class) Parent() *Class { return c.parent }

// Define adds methods defined directly on this class. Returns the class for
// chaining.
func (c *Class) Define(methods ...string) *Class {
	for _, m := range methods {
		c.own[m] = struct{}{}
	}
	return c
}

// Owns reports whether the class defines method directly, ignoring
// inheritance.
func (c *Class) Owns(method string) bool {
	_, ok := c.own[method]
	return ok
}

// Ancestors returns the identity keys of the class and every superclass,
// starting with the class itself.
func (c *Class) Ancestors() []identity.Key {
	var keys []identity.Key
	for cur := c; cur != nil; cur = cur.parent {
		keys = append(keys, cur.key)
	}
	return keys
}

// ResolveMethod walks the ancestor chain and returns the class whose own
// implementation of method would run for an instance of c, or nil when no
// class in the chain defines it.
func (c *Class) ResolveMethod(method string) *Class {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.Owns(method) {
			return cur
		}
	}
	return nil
}

// Object is a guest object instance.
type Object struct {
	key   identity.Key
	class *Class
}

// NewObject registers an instance of class.
func NewObject(reg *identity.Registry, class *Class) *Object {
	return &Object{key: reg.Next(), class: class}
}

// Key returns the object's identity key.
func (o *Object) Key() identity.Key { return o.key }

// Class returns the object's runtime class.
func (o *Object) Class() *Class { return o.class }
