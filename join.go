package sqlast

// Join is left, kind (CROSS|INNER|LEFT|RIGHT|FULL|""), right, and a
// condition: either an ordered list of USING columns or an ON
// expression node. An empty JoinKind renders as CROSS JOIN — the shape
// produced by SELECT.FROM's implicit multi-table chaining.
type Join struct {
	base
	Left     Term
	JoinKind string
	Right    Term
	Using    []string
	On       Term
}

func newJoin(left any, kind string, right any) *Join {
	return &Join{base: base{kind: KindJoin}, Left: AnyToTerm(left), JoinKind: kind, Right: AnyToTerm(right)}
}

// JOIN builds a generic join node; condition is either a []string
// (USING columns) or a Node (ON expression).
func JOIN(left any, kind string, right any, condition any) *Join {
	j := newJoin(left, kind, right)
	j.setCondition(condition)
	return j
}

func (j *Join) setCondition(condition any) {
	switch c := condition.(type) {
	case nil:
	case []string:
		j.Using = c
	case Node:
		j.On = NodeTerm(c)
	default:
		j.On = AnyToTerm(condition)
	}
}

// CROSS_JOIN, INNER_JOIN, LEFT_JOIN, RIGHT_JOIN, FULL_JOIN build a join
// of the named kind. condition may be nil (CROSS_JOIN has none), a
// []string of USING columns, or a Node for an ON expression.
func CROSS_JOIN(left, right any) *Join            { return JOIN(left, "CROSS", right, nil) }
func INNER_JOIN(left, right, condition any) *Join { return JOIN(left, "INNER", right, condition) }
func LEFT_JOIN(left, right, condition any) *Join  { return JOIN(left, "LEFT", right, condition) }
func RIGHT_JOIN(left, right, condition any) *Join { return JOIN(left, "RIGHT", right, condition) }
func FULL_JOIN(left, right, condition any) *Join  { return JOIN(left, "FULL", right, condition) }

// As sets the node's alias and returns the receiver for chaining.
func (j *Join) As(alias string) *Join {
	j.alias = alias
	return j
}
