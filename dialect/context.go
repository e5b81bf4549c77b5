// Package dialect compiles a sqlast.Node tree into dialect-specific SQL
// text. Context is the polymorphic compiler: it owns the escaping
// primitives (identifier, string, number, buffer, array, JSON, VALUES),
// the `?`/`$N` substitution engine, and the node-walking compile
// functions that consult the registry package for operator/function
// rendering.
package dialect

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sqlast/sqlast"
)

// QuoteStyle names the identifier-quoting convention a dialect uses.
type QuoteStyle int

const (
	QuoteDouble QuoteStyle = iota // "..."
	QuoteBacktick                 // `...`
	QuoteBracket                  // [...]
)

// Before/After return the opening/closing characters for q.
func (q QuoteStyle) Before() string {
	switch q {
	case QuoteBacktick:
		return "`"
	case QuoteBracket:
		return "["
	default:
		return `"`
	}
}

func (q QuoteStyle) After() string {
	switch q {
	case QuoteBacktick:
		return "`"
	case QuoteBracket:
		return "]"
	default:
		return `"`
	}
}

// Features captures the dialect differences the compiler needs to
// consult repeatedly. Any change to a live Context's Features must be
// followed by a call to (*Context).refresh to recompute derived
// tokens.
type Features struct {
	Quote             QuoteStyle
	NativeBoolean     bool
	NativeArray       bool
	NullsFirstLast    bool
	NullsSortBottom   bool
	Returning         bool
	ReturningAsOutput bool
	SpecialNumbers    bool

	// LimitBeforeOffset selects "LIMIT m OFFSET n" ordering; false
	// renders "OFFSET n" then "LIMIT m" (the PostgreSQL shape).
	LimitBeforeOffset bool
	// NoLimitToken is the limit the dialect needs when an OFFSET is
	// given without a LIMIT ("-1" on SQLite, the 2^64-1 sentinel on
	// MySQL); empty means the LIMIT clause may simply be omitted.
	NoLimitToken string
}

// Options configures a new Context.
type Options struct {
	Pretty    bool
	IndentStr string // default "  " when Pretty and unset
	Version   string // parsed via sqlast.ParseVersion; "" leaves it zero-valued
}

// Context is a single dialect compiler instance. It is safe to reuse
// across many Compile calls but is not safe for concurrent mutation of
// its Options/Features after construction (construct one per goroutine
// if Options differ).
type Context struct {
	DialectName string
	Features    Features
	Pretty      bool
	Indent      string
	Version     sqlast.Version

	kind dialectKind // set by the postgres/mysql/sqlite factory; selects EscapeString/EscapeBuffer's algorithm

	// Precomputed formatting tokens, recomputed by refresh().
	sep         string // newline-or-space between major clauses
	comma       string // ", " or ",\n"+indent
	quoteBefore string
	quoteAfter  string
}

func newContext(dialectName string, kind dialectKind, features Features, opts Options) *Context {
	ctx := &Context{
		DialectName: dialectName,
		Features:    features,
		Pretty:      opts.Pretty,
		Indent:      opts.IndentStr,
		kind:        kind,
	}
	if ctx.Pretty && ctx.Indent == "" {
		ctx.Indent = "  "
	}
	if opts.Version != "" {
		if v, err := sqlast.ParseVersion(opts.Version); err == nil {
			ctx.Version = v
		}
	}
	ctx.refresh()
	return ctx
}

// refresh recomputes every token derived from Features/Pretty/Indent.
// Call it after mutating ctx.Features on a live Context.
func (ctx *Context) refresh() {
	if ctx.Pretty {
		ctx.sep = "\n"
		ctx.comma = ",\n" + ctx.Indent
	} else {
		ctx.sep = " "
		ctx.comma = ", "
	}
	ctx.quoteBefore = ctx.Features.Quote.Before()
	ctx.quoteAfter = ctx.Features.Quote.After()
}

// indentBlock re-indents a pretty-printed sub-block by prefixing every
// internal newline with ctx.Indent, used when nesting a sub-query.
func (ctx *Context) indentBlock(s string) string {
	if !ctx.Pretty {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+ctx.Indent)
}

// Factory is a dialect constructor registered via Register.
type Factory func(opts Options) *Context

var (
	registryMu sync.RWMutex
	factories  = map[string]Factory{}
)

// Register installs a dialect factory under name. Dialect packages
// (postgres.go, mysql.go, sqlite.go in this package) call this from an
// init() function.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[strings.ToLower(name)] = f
}

// Has reports whether a dialect factory is registered under name.
func Has(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[strings.ToLower(name)]
	return ok
}

// New constructs a Context for the named dialect ("postgres", "mysql",
// "sqlite", and common aliases). It returns an error wrapping
// sqlast.ErrUnsupportedByDialect for an unknown name.
func New(name string, opts Options) (*Context, error) {
	registryMu.RLock()
	f, ok := factories[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("dialect %q: %w", name, sqlast.ErrUnsupportedByDialect)
	}
	return f(opts), nil
}
