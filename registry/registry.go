// Package registry holds the process-wide operator and function tables
// a dialect Context consults while compiling BinaryOp and Func nodes:
// name resolution, arity, applicable dialects, negation pairs, aliases,
// and the handful of specialized compilers (CAST, BETWEEN, ATAN, ...)
// that can't be expressed as a plain "NAME(args...)" or "left OP right"
// template.
package registry

import (
	"strings"
	"sync"

	"github.com/sqlast/sqlast"
)

// Flags describes shape and behavioral bits of a Record, mirroring the
// kUnary/kBinary/kFunction/... flags named in the data model.
type Flags uint32

const (
	FlagUnary Flags = 1 << iota
	FlagBinary
	FlagFunction
	FlagAggregate
	FlagVoid       // takes no arguments, e.g. RANDOM()
	FlagInPlaceNot // negated by a NOT prefix rather than a distinct token
	FlagLeftValues // left operand escapes via escape_values (e.g. IN's left tuple form)
	FlagRightValues
)

// Dialects is a small bitset of which of the three supported dialects a
// Record applies to.
type Dialects uint8

const (
	Postgres Dialects = 1 << iota
	MySQL
	SQLite

	AllDialects = Postgres | MySQL | SQLite
)

// DialectsFromName converts a dialect name ("postgres", "mysql",
// "sqlite") to its Dialects bit, or 0 if unrecognized.
func DialectsFromName(name string) Dialects {
	switch strings.ToLower(name) {
	case "postgres", "postgresql":
		return Postgres
	case "mysql", "mariadb":
		return MySQL
	case "sqlite", "sqlite3":
		return SQLite
	default:
		return 0
	}
}

// CompileFunc renders a function or operator call given the dialect
// name and the already-escaped argument strings, for the handful of
// operators/functions whose SQL shape can't be expressed by name_fmt
// alone.
type CompileFunc func(dialectName string, args []string) (string, error)

// Record is one entry in the operator or function table.
type Record struct {
	Name     string
	NameFmt  string // e.g. " = " for a binary operator, "POWER" for a function
	Desc     string
	Flags    Flags
	MinArgs  int
	MaxArgs  int // -1 means unbounded
	Dialects Dialects
	Category string
	Compile  CompileFunc // nil uses the generic binary/function compile rule
}

var (
	mu         sync.RWMutex
	operators  = map[string]*Record{}
	functions  = map[string]*Record{}
	negations  = map[string]string{}
	aliases    = map[string]string{}
	once       sync.Once
)

func ensureInit() {
	once.Do(func() {
		registerOperators()
		registerFunctions()
		registerNegations()
		registerAliases()
		registerCompilers()
	})
}

// RegisterOperator adds or overwrites a binary operator record.
func RegisterOperator(r *Record) {
	mu.Lock()
	defer mu.Unlock()
	operators[r.Name] = r
}

// RegisterFunction adds or overwrites a function record.
func RegisterFunction(r *Record) {
	mu.Lock()
	defer mu.Unlock()
	functions[r.Name] = r
}

// RegisterNegation records that a and b are each other's negation.
func RegisterNegation(a, b string) {
	mu.Lock()
	defer mu.Unlock()
	negations[a] = b
	negations[b] = a
}

// RegisterAlias records that alias resolves to canonical.
func RegisterAlias(alias, canonical string) {
	mu.Lock()
	defer mu.Unlock()
	aliases[strings.ToUpper(alias)] = strings.ToUpper(canonical)
}

// resolve follows the alias table to a canonical name.
func resolve(name string) string {
	upper := strings.ToUpper(name)
	if canonical, ok := aliases[upper]; ok {
		return canonical
	}
	return upper
}

// LookupOperator resolves name (case-sensitively for symbolic operators
// like "=", case-insensitively for word operators like "LIKE") to its
// Record, following aliases. ok is false for an unregistered name.
func LookupOperator(name string) (*Record, bool) {
	ensureInit()
	mu.RLock()
	defer mu.RUnlock()
	if r, ok := operators[name]; ok {
		return r, true
	}
	canonical := resolve(name)
	r, ok := operators[canonical]
	return r, ok
}

// LookupFunction resolves name (case-insensitive) to its Record,
// following aliases.
func LookupFunction(name string) (*Record, bool) {
	ensureInit()
	mu.RLock()
	defer mu.RUnlock()
	canonical := resolve(name)
	if r, ok := functions[canonical]; ok {
		return r, true
	}
	r, ok := functions[strings.ToUpper(name)]
	return r, ok
}

// Negate returns the negated operator token for name, if one is
// registered.
func Negate(name string) (string, bool) {
	ensureInit()
	mu.RLock()
	defer mu.RUnlock()
	n, ok := negations[strings.ToUpper(name)]
	return n, ok
}

// SupportsDialect reports whether r applies to the given dialect name.
func (r *Record) SupportsDialect(dialectName string) bool {
	d := DialectsFromName(dialectName)
	if d == 0 {
		return true
	}
	return r.Dialects&d != 0
}

// CheckArity validates argc against r's declared bounds. A mismatch is
// surfaced as a plain sqlast.CompileError: still a structural,
// synchronous error, just not one of the named sentinels.
func (r *Record) CheckArity(argc int) error {
	if argc < r.MinArgs || (r.MaxArgs >= 0 && argc > r.MaxArgs) {
		return sqlast.NewCompileError("%s expects between %d and %d arguments, got %d", r.Name, r.MinArgs, maxArgsDisplay(r.MaxArgs), argc)
	}
	return nil
}

func maxArgsDisplay(max int) any {
	if max < 0 {
		return "unbounded"
	}
	return max
}
