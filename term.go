package sqlast

// ExplicitType is the logical type tag attached to a Value (or passed to
// EscapeValue) that forces a particular escaping path.
type ExplicitType string

const (
	TypeBoolean ExplicitType = "boolean"
	TypeInteger ExplicitType = "integer"
	TypeNumber  ExplicitType = "number"
	TypeString  ExplicitType = "string"
	TypeArray   ExplicitType = "array"
	TypeValues  ExplicitType = "values"
	TypeJSON    ExplicitType = "json"
	TypeRaw     ExplicitType = "raw"
)

type termKind int

const (
	termAbsent termKind = iota
	termScalar
	termNode
	termList
	termBlob
)

// Term is the heterogeneous child slot described in the data model: a
// _left/_right/_value position may hold another Node, a plain scalar, an
// ordered sequence of further Terms, or raw bytes. A single dispatch
// point (see dialect.Context.EscapeTerm) resolves which case applies.
type Term struct {
	kind   termKind
	node   Node
	scalar any
	list   []Term
	blob   []byte
}

// AbsentTerm represents "no value supplied" (JS undefined), distinct
// from NilTerm's explicit SQL NULL. Only the json explicit type tells
// the two apart; every other path treats both as NULL.
func AbsentTerm() Term { return Term{kind: termAbsent} }

// NilTerm represents an explicit null value.
func NilTerm() Term { return Term{kind: termScalar, scalar: nil} }

// NodeTerm wraps a child Node.
func NodeTerm(n Node) Term { return Term{kind: termNode, node: n} }

// ScalarTerm wraps a plain value (string, number, bool, []byte handled
// via BlobTerm, or any JSON-able value for implicit object escaping).
func ScalarTerm(v any) Term { return Term{kind: termScalar, scalar: v} }

// ListTerm wraps an ordered sequence of further Terms (arrays, VALUES
// lists, IN right-hand sides).
func ListTerm(items ...Term) Term { return Term{kind: termList, list: items} }

// BlobTerm wraps raw bytes for buffer escaping.
func BlobTerm(b []byte) Term { return Term{kind: termBlob, blob: b} }

func (t Term) IsAbsent() bool { return t.kind == termAbsent }
func (t Term) IsNode() bool   { return t.kind == termNode }
func (t Term) IsList() bool   { return t.kind == termList }
func (t Term) IsBlob() bool   { return t.kind == termBlob }
func (t Term) IsScalar() bool { return t.kind == termScalar }

func (t Term) Node() (Node, bool)   { return t.node, t.kind == termNode }
func (t Term) Scalar() (any, bool)  { return t.scalar, t.kind == termScalar }
func (t Term) List() ([]Term, bool) { return t.list, t.kind == termList }
func (t Term) Blob() ([]byte, bool) { return t.blob, t.kind == termBlob }

// AnyToTerm coerces an arbitrary Go value into the Term sum used
// throughout the tree. Nodes pass through as NodeTerm, []byte becomes a
// BlobTerm, slices become ListTerm (each element itself coerced), nil
// becomes NilTerm, and everything else is a ScalarTerm.
func AnyToTerm(v any) Term {
	switch val := v.(type) {
	case nil:
		return NilTerm()
	case Term:
		return val
	case Node:
		return NodeTerm(val)
	case []byte:
		return BlobTerm(val)
	case []any:
		items := make([]Term, len(val))
		for i, e := range val {
			items[i] = AnyToTerm(e)
		}
		return ListTerm(items...)
	default:
		return ScalarTerm(v)
	}
}

// AnySliceToTerms coerces a slice of arbitrary values into Terms,
// flattening a single []any argument if that's what was passed (so
// factories can accept either `F(a, b, c)` or `F([]any{a, b, c})`).
func AnySliceToTerms(vs []any) []Term {
	if len(vs) == 1 {
		if items, ok := vs[0].([]any); ok {
			return AnySliceToTerms(items)
		}
	}
	out := make([]Term, len(vs))
	for i, v := range vs {
		out[i] = AnyToTerm(v)
	}
	return out
}
