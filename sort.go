package sqlast

import "strings"

// Sort is a column or expression plus a direction (ASC/DESC/unset) and
// a null-placement hint (NULLS FIRST/LAST/unset). Validation of
// Direction/Nulls/Expr is deferred to compile time (see
// dialect.Context), matching spec.md §7's "builder methods eagerly
// validate only cheap invariants; most checks happen during
// compilation."
type Sort struct {
	base
	Expr      Term
	Direction string // raw, as supplied: "", "0", "1", "-1", "ASC", "DESC", ...
	Nulls     string // raw, as supplied: "", "NULLS FIRST", "NULLS LAST", ...
}

// SORT builds a Sort node from a column (string, Node, or ordinal
// number), a direction, and an optional nulls placement. Both are
// normalized and validated by the Context during compilation.
func SORT(col any, direction string, nulls ...string) *Sort {
	var nullsVal string
	if len(nulls) > 0 {
		nullsVal = nulls[0]
	}
	return &Sort{
		base:      base{kind: KindSort},
		Expr:      identTerm(col),
		Direction: direction,
		Nulls:     nullsVal,
	}
}

// ParseSortDirection normalizes a user-supplied direction string.
func ParseSortDirection(direction string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "", "0", "1":
		return "ASC", nil
	case "-1":
		return "DESC", nil
	case "ASC":
		return "ASC", nil
	case "DESC":
		return "DESC", nil
	default:
		return "", WrapCompileError(ErrInvalidSortDirection, "invalid sort direction %q", direction)
	}
}

// ParseSortNulls normalizes a user-supplied nulls-placement string.
func ParseSortNulls(nulls string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(nulls)) {
	case "":
		return "", nil
	case "NULLS FIRST":
		return "NULLS FIRST", nil
	case "NULLS LAST":
		return "NULLS LAST", nil
	default:
		return "", WrapCompileError(ErrInvalidSortNulls, "invalid sort nulls placement %q", nulls)
	}
}

// As sets the node's alias and returns the receiver for chaining.
func (s *Sort) As(alias string) *Sort {
	s.alias = alias
	return s
}
