package policy

// Rule is one subject's sparse allow-list of action names plus an allow-all
// flag. A Rule is owned by exactly one (Store, identity key, category)
// triple; Store.RuleFor always hands back the same Rule for the same triple.
type Rule struct {
	names    map[string]struct{}
	allowAll bool
	grants   int
}

func newRule() *Rule {
	return &Rule{names: make(map[string]struct{})}
}

// Allow adds action names to the allowed set. The grant count increases only
// by the number of names not already present. Returns the Rule for chaining.
func (r *Rule) Allow(names ...string) *Rule {
	for _, name := range names {
		if _, ok := r.names[name]; ok {
			continue
		}
		r.names[name] = struct{}{}
		r.grants++
	}
	return r
}

// AllowAll makes the Rule permit every action name. Idempotent: it counts as
// exactly one grant no matter how often it is called. Returns the Rule for
// chaining.
func (r *Rule) AllowAll() *Rule {
	if !r.allowAll {
		r.allowAll = true
		r.grants++
	}
	return r
}

// Permits reports whether name is allowed: either allow-all is set or the
// name was explicitly added.
func (r *Rule) Permits(name string) bool {
	if r.allowAll {
		return true
	}
	_, ok := r.names[name]
	return ok
}

// GrantCount returns the number of explicit grants recorded on this Rule.
// It is used only by authoring validation, never by enforcement decisions.
func (r *Rule) GrantCount() int {
	return r.grants
}
