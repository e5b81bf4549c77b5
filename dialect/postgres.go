package dialect

import (
	"fmt"
	"strings"

	"github.com/sqlast/sqlast"
)

func init() {
	Register("postgres", newPostgresContext)
	Register("postgresql", newPostgresContext)
}

func newPostgresContext(opts Options) *Context {
	features := Features{
		Quote:             QuoteDouble,
		NativeBoolean:     true,
		NativeArray:       true,
		NullsFirstLast:    true,
		NullsSortBottom:   true,
		Returning:         true,
		ReturningAsOutput: false,
		SpecialNumbers:    true,
	}
	return newContext("postgres", kindPostgres, features, opts)
}

// pgNamedEscapes maps the control characters PostgreSQL's extended string
// syntax (E'...') names explicitly; anything else in [0x00, 0x1f] falls
// back to a \xHH escape.
var pgNamedEscapes = map[byte]string{
	'\b': `\b`,
	'\t': `\t`,
	'\n': `\n`,
	'\f': `\f`,
	'\r': `\r`,
	'\'': `\'`,
	'\\': `\\`,
}

// escapeStringPostgres replaces control characters and backslash/quote
// with their E'...' escapes, rejecting an embedded NUL outright. The
// E'...' prefix is only used when at least one replacement occurred;
// an otherwise-plain string is wrapped in ordinary '...'.
func escapeStringPostgres(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", sqlast.WrapCompileError(sqlast.ErrNulByte, "string literal contains a NUL byte")
	}
	var b strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if named, ok := pgNamedEscapes[c]; ok {
			b.WriteString(named)
			escaped = true
			continue
		}
		if c < 0x20 || c == 0x7f {
			fmt.Fprintf(&b, `\x%02x`, c)
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	if escaped {
		return "E'" + b.String() + "'", nil
	}
	return "'" + s + "'", nil
}
