package sqlast

// Raw is a prebuilt SQL fragment plus an optional bindings sequence.
// It compiles to the fragment with bindings substituted in place via
// the Context's ?/$N substitution engine — an explicit trust boundary:
// the fragment text itself is never escaped.
type Raw struct {
	base
	SQL      string
	Bindings []any
}

// RAW builds a Raw fragment. Bindings, if any, are substituted into SQL
// at the ? or $N markers it contains.
func RAW(sql string, bindings ...any) *Raw {
	return &Raw{base: base{kind: KindRaw}, SQL: sql, Bindings: bindings}
}

// As sets the node's alias and returns the receiver for chaining.
func (r *Raw) As(alias string) *Raw {
	r.alias = alias
	return r
}

// HasBindings reports whether substitution should run at all. The
// guard is "bindings present and non-empty", not the tautological
// `len(bindings) || len(bindings) > 0` some revisions of this logic
// carried.
func (r *Raw) HasBindings() bool {
	return len(r.Bindings) > 0
}
