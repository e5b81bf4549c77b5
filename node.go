// Package sqlast builds a tree of typed expression nodes — identifiers,
// values, operators, function calls, joins, sorts, compound queries, and
// top-level SELECT/INSERT/UPDATE/DELETE statements — that a dialect
// Context (see the dialect subpackage) renders to a SQL string.
//
// No SQL parsing happens here: trees are assembled by calling the
// factory functions below and chaining their builder methods.
package sqlast

// NodeFlags is a small bitset carried by every node, mirroring the
// flags field described for Node in the data model.
type NodeFlags uint32

const (
	FlagNone NodeFlags = 0
	// FlagDistinct marks a Func or Select as DISTINCT.
	FlagDistinct NodeFlags = 1 << (iota - 1)
	// FlagAll marks a Select or CompoundQuery as ALL.
	FlagAll
)

// Node is the marker interface implemented by every vertex in the
// expression/query tree. Kind never changes after construction.
type Node interface {
	Kind() string
	Flags() NodeFlags
	Alias() string
}

// Kind discriminants. BinaryOp nodes use the operator token itself as
// their Kind (e.g. "=", "IN") rather than one of these constants.
const (
	KindRaw          = "RAW"
	KindIdentifier   = "IDENTIFIER"
	KindValue        = "VALUE"
	KindUnary        = "UNARY"
	KindLogical      = "LOGICAL"
	KindFunc         = "FUNC"
	KindCase         = "CASE"
	KindSort         = "SORT"
	KindJoin         = "JOIN"
	KindConditionMap = "CONDITION_MAP"
	KindSelect       = "SELECT"
	KindInsert       = "INSERT"
	KindUpdate       = "UPDATE"
	KindDelete       = "DELETE"
	KindCompound     = "COMPOUND"
)

// base is embedded by every concrete node type to supply the common
// kind/flags/alias bookkeeping.
type base struct {
	kind  string
	flags NodeFlags
	alias string
}

func (b *base) Kind() string     { return b.kind }
func (b *base) Flags() NodeFlags { return b.flags }
func (b *base) Alias() string    { return b.alias }

// Field is one ordered (name, value) pair. Row is a sequence of Fields
// and is sqlast's stand-in for the JS-object-literal ergonomics the
// original builders lean on (INSERT/UPDATE values, SELECT FIELD
// aliasing, ConditionMap WHERE objects) — Go maps carry no iteration
// order, so an ordered slice is used instead wherever the spec's
// "first insertion order" invariant matters.
type Field struct {
	Name  string
	Value any
}

// Row is an ordered set of Fields.
type Row []Field

// R builds a Row from alternating name/value arguments:
// R("a", 1, "b", 2) is the Row{{"a",1},{"b",2}}.
func R(pairs ...any) Row {
	row := make(Row, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := pairs[i].(string)
		row = append(row, Field{Name: name, Value: pairs[i+1]})
	}
	return row
}

// Get returns the value for name and whether it was present.
func (r Row) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the Row's field names in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Name
	}
	return keys
}
