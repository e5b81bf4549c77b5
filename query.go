package sqlast

// Query is the marker interface satisfied by Select, Insert, Update,
// Delete, and CompoundQuery: the statement-level nodes a Context can
// compile as a top-level query. Select and CompoundQuery can also appear
// as parenthesized subqueries inside another node.
type Query interface {
	Node
	queryMarker()
}

// whereAdd implements the shared WHERE/HAVING condition accumulation
// used by Select, Update, and Delete: args is interpreted by
// conditionTerms and folded into existing (which may be nil) under op.
func whereAdd(existing *Logical, op string, args []any) *Logical {
	return existing.AddTerms(op, conditionTerms(args))
}

// orderByAdd appends sort keys to an ORDER BY list. The argument list
// is either one or more prebuilt Sort nodes, or the (col, direction?,
// nulls?) form where col may itself be a list of columns sharing the
// same direction and nulls placement.
func orderByAdd(existing []Term, items []any) []Term {
	if len(items) == 0 {
		return existing
	}
	if _, ok := items[0].(*Sort); ok {
		for _, item := range items {
			if s, ok := item.(*Sort); ok {
				existing = append(existing, NodeTerm(s))
			}
		}
		return existing
	}
	var direction, nulls string
	if len(items) > 1 {
		direction, _ = items[1].(string)
	}
	if len(items) > 2 {
		nulls, _ = items[2].(string)
	}
	switch col := items[0].(type) {
	case []any:
		for _, c := range col {
			existing = append(existing, NodeTerm(SORT(c, direction, nulls)))
		}
	case []string:
		for _, c := range col {
			existing = append(existing, NodeTerm(SORT(c, direction, nulls)))
		}
	default:
		existing = append(existing, NodeTerm(SORT(col, direction, nulls)))
	}
	return existing
}
