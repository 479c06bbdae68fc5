package entities

// RuleCategory selects which identity-keyed rule map a subject's rule lives
// in. The three categories differ in how a method call matches them; see the
// policy package for the decision procedure.
type RuleCategory int

const (
	// CategoryObject matches the exact object instance the call targets.
	CategoryObject RuleCategory = iota

	// CategoryInstancesOf matches any instance of a class or one of its
	// descendants, regardless of which class owns the method implementation.
	CategoryInstancesOf

	// CategoryOwnMethodsOf matches only methods whose implementation is
	// defined directly on the class the rule names. An overriding subclass
	// implementation is not covered by a grant aimed at the base class.
	CategoryOwnMethodsOf
)

// NumCategories is the number of defined rule categories.
const NumCategories = 3

// Valid reports whether c is one of the defined categories.
func (c RuleCategory) Valid() bool {
	return c >= CategoryObject && c <= CategoryOwnMethodsOf
}

// String returns the category name as used in policy documents.
func (c RuleCategory) String() string {
	switch c {
	case CategoryObject:
		return "object"
	case CategoryInstancesOf:
		return "instances_of"
	case CategoryOwnMethodsOf:
		return "own_methods_of"
	default:
		return "unknown"
	}
}

// Categories returns all defined rule categories.
func Categories() []RuleCategory {
	return []RuleCategory{CategoryObject, CategoryInstancesOf, CategoryOwnMethodsOf}
}
