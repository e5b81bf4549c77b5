package sqlast

// Func covers both scalar functions and aggregates: an operator name,
// an argument list, and ALL/DISTINCT flags (meaningful only for
// aggregates).
type Func struct {
	base
	Name string
	Args []Term
}

// FUNC builds a function-call node. Per-function named factories
// (COUNT(...), UPPER(...), ...) are the ergonomic sugar layer spec.md
// scopes out; FUNC covers every registered operator/function by name.
func FUNC(name string, args ...any) *Func {
	return &Func{base: base{kind: KindFunc}, Name: name, Args: AnySliceToTerms(args)}
}

// As sets the node's alias and returns the receiver for chaining.
func (f *Func) As(alias string) *Func {
	f.alias = alias
	return f
}

// Distinct marks an aggregate's argument list as DISTINCT.
func (f *Func) Distinct() *Func {
	f.flags |= FlagDistinct
	return f
}

// All marks an aggregate's argument list as ALL (the default; provided
// for symmetry with Distinct and mutually exclusive with it).
func (f *Func) All() *Func {
	f.flags |= FlagAll
	return f
}
