package sqlast

// BinaryOp is a two-child node typed by an operator token; the dialect
// Context resolves rendering by consulting the operator registry. Kind
// is the operator token itself (e.g. "=", "IN"), not a generic
// "BINARY" discriminant.
type BinaryOp struct {
	base
	Op          string
	Left, Right Term
}

// OP builds a generic binary operator node: left OP right.
func OP(left any, op string, right any) *BinaryOp {
	return &BinaryOp{
		base:  base{kind: op},
		Op:    op,
		Left:  AnyToTerm(left),
		Right: AnyToTerm(right),
	}
}

// EQ, NE, LT, LE, GT, GE are convenience wrappers around OP for the
// comparison operators spec.md names explicitly.
func EQ(left, right any) *BinaryOp { return OP(left, "=", right) }
func NE(left, right any) *BinaryOp { return OP(left, "<>", right) }
func LT(left, right any) *BinaryOp { return OP(left, "<", right) }
func LE(left, right any) *BinaryOp { return OP(left, "<=", right) }
func GT(left, right any) *BinaryOp { return OP(left, ">", right) }
func GE(left, right any) *BinaryOp { return OP(left, ">=", right) }

// As sets the node's alias and returns the receiver for chaining.
func (b *BinaryOp) As(alias string) *BinaryOp {
	b.alias = alias
	return b
}
