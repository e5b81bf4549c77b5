package sqlast

// Logical is an ordered list of boolean sub-expressions joined by AND
// or OR. As a nested child of another node it wraps itself in
// parentheses once it has more than one child; as the top-level
// WHERE/HAVING clause it never adds that outer parenthesis (the
// Context compiles the top-level Logical directly).
type Logical struct {
	base
	Op       string // "AND" or "OR"
	Children []Term
}

func newLogical(op string, items []Term) *Logical {
	return &Logical{base: base{kind: KindLogical}, Op: op, Children: items}
}

// AND builds a standalone Logical joined by AND.
func AND(items ...any) *Logical {
	return newLogical("AND", AnySliceToTerms(items))
}

// OR builds a standalone Logical joined by OR.
func OR(items ...any) *Logical {
	return newLogical("OR", AnySliceToTerms(items))
}

// As sets the node's alias and returns the receiver for chaining.
func (l *Logical) As(alias string) *Logical {
	l.alias = alias
	return l
}

// Add accumulates items into the tree under op, implementing the
// WHERE/HAVING invariant: repeated calls with the same operator append
// flatly; a call with the other operator wraps the current tree as the
// sole existing child of a brand new Logical typed by the new operator,
// then appends the new items alongside it. This yields left-to-right
// flat grouping with parenthesization only where the operator changes,
// and it applies whether l is nil (first call) or already populated.
func (l *Logical) Add(op string, items ...any) *Logical {
	return l.AddTerms(op, AnySliceToTerms(items))
}

// AddTerms is the Term-level counterpart of Add, used internally by the
// query builders so pre-built condition Terms (e.g. from the WHERE(a,
// op, b) / WHERE(row) / WHERE([]conditions) argument forms) aren't
// coerced a second time.
func (l *Logical) AddTerms(op string, terms []Term) *Logical {
	if l == nil || l.Op == "" {
		if l == nil {
			return newLogical(op, terms)
		}
		l.Op = op
		l.Children = append(l.Children, terms...)
		return l
	}
	if l.Op == op {
		l.Children = append(l.Children, terms...)
		return l
	}
	wrapped := &Logical{base: l.base, Op: l.Op, Children: l.Children}
	wrapped.base.kind = KindLogical
	return newLogical(op, append([]Term{NodeTerm(wrapped)}, terms...))
}
