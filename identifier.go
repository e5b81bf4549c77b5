package sqlast

import "strings"

// Identifier is a single name or a dotted path (schema.table.col). The
// special token "*" is never quoted by the dialect Context.
type Identifier struct {
	base
	Parts []string
}

// COL builds an Identifier from one or more path segments. A single
// segment may itself contain "." separators ("schema.table.col"); the
// Context splits those further when escaping. Null/empty segments are
// permitted and are skipped silently at escape time.
func COL(parts ...string) *Identifier {
	return &Identifier{base: base{kind: KindIdentifier}, Parts: parts}
}

// IDENT is an alias for COL kept for readability at call sites that
// build a single bare identifier.
func IDENT(name string) *Identifier {
	return COL(name)
}

// As sets the node's alias and returns the receiver for chaining.
func (i *Identifier) As(alias string) *Identifier {
	i.alias = alias
	return i
}

// Star reports whether this identifier is the unquoted "*" token.
func (i *Identifier) Star() bool {
	return len(i.Parts) == 1 && i.Parts[0] == "*"
}

// STAR is the conventional "all columns" identifier.
func STAR() *Identifier { return COL("*") }

// String renders the identifier's segments joined by "." without any
// dialect-specific quoting — used for diagnostics, not compilation.
func (i *Identifier) String() string {
	return strings.Join(i.Parts, ".")
}
