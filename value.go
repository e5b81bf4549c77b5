package sqlast

// Value wraps a literal carrying an optional explicit logical type used
// to resolve escaping ambiguity. A Value built without an explicit type
// is what the spec calls a PrimitiveValue.
type Value struct {
	base
	Val      Term
	Explicit ExplicitType
}

// VAL wraps v as a Value. An optional explicit type pins the escaping
// path (VAL(x, sqlast.TypeInteger)); omitted, the Context deduces it
// from v's dynamic type at compile time.
func VAL(v any, explicit ...ExplicitType) *Value {
	val := &Value{base: base{kind: KindValue}, Val: AnyToTerm(v)}
	if len(explicit) > 0 {
		val.Explicit = explicit[0]
	}
	return val
}

// ARRAY_VAL pins the array explicit type, rendering as ARRAY[...] on
// PostgreSQL and as a JSON-encoded string literal elsewhere.
func ARRAY_VAL(items ...any) *Value {
	return &Value{
		base:     base{kind: KindValue},
		Val:      ListTerm(AnySliceToTerms(items)...),
		Explicit: TypeArray,
	}
}

// VALUES_VAL pins the values explicit type, rendering as "(v1, v2, ...)".
func VALUES_VAL(items ...any) *Value {
	return &Value{
		base:     base{kind: KindValue},
		Val:      ListTerm(AnySliceToTerms(items)...),
		Explicit: TypeValues,
	}
}

// JSON_VAL pins the json explicit type: v is JSON-serialized then
// string-escaped, and an absent v (Go nil passed through AbsentTerm)
// maps to SQL NULL. This constructs a JSON-typed Value — an earlier
// revision of this logic mistakenly built an ArrayValue instead.
func JSON_VAL(v any) *Value {
	var t Term
	if v == nil {
		t = AbsentTerm()
	} else {
		t = AnyToTerm(v)
	}
	return &Value{base: base{kind: KindValue}, Val: t, Explicit: TypeJSON}
}

// RAW_VAL pins the raw explicit type: v (expected to be a string) is
// emitted completely unescaped, an explicit trust boundary.
func RAW_VAL(sql string) *Value {
	return &Value{base: base{kind: KindValue}, Val: ScalarTerm(sql), Explicit: TypeRaw}
}

// As sets the node's alias and returns the receiver for chaining.
func (v *Value) As(alias string) *Value {
	v.alias = alias
	return v
}
