package dialect

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sqlast/sqlast"
)

// dialectKind discriminates the three concrete dialects for the
// escaping paths that can't be expressed through Features alone
// (string/buffer/array escaping each have a genuinely different
// algorithm per dialect, not just different tokens).
type dialectKind int

const (
	kindPostgres dialectKind = iota
	kindMySQL
	kindSQLite
)

var boolStrings = map[string]bool{
	"0": false, "f": false, "false": false, "n": false, "no": false, "off": false,
	"1": true, "t": true, "true": true, "y": true, "yes": true, "on": true,
}

var integerRE = regexp.MustCompile(`^-?\d+$`)
var scientificRE = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)

// EscapeIdentifier renders one or more path segments as a quoted,
// dot-joined identifier. A single segment may itself contain "."
// separators and is split further. The literal token "*" passes
// through unquoted. Empty/nil segments are skipped silently.
func (ctx *Context) EscapeIdentifier(segments ...string) (string, error) {
	var parts []string
	for _, seg := range segments {
		for _, p := range strings.Split(seg, ".") {
			if p == "" {
				continue
			}
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ctx.quoteBefore + ctx.quoteAfter, nil
	}
	rendered := make([]string, len(parts))
	for i, p := range parts {
		if strings.ContainsRune(p, 0) {
			return "", sqlast.WrapCompileError(sqlast.ErrNulByte, "identifier segment %q contains a NUL byte", p)
		}
		if p == "*" {
			rendered[i] = "*"
			continue
		}
		doubled := strings.ReplaceAll(p, ctx.quoteAfter, ctx.quoteAfter+ctx.quoteAfter)
		rendered[i] = ctx.quoteBefore + doubled + ctx.quoteAfter
	}
	return strings.Join(rendered, "."), nil
}

// EscapeValue dispatches a term to its rendered SQL literal, optionally
// pinned by an explicit logical type.
func (ctx *Context) EscapeValue(v any, explicit sqlast.ExplicitType) (string, error) {
	if explicit != "" {
		return ctx.escapeExplicit(v, explicit)
	}
	return ctx.escapeImplicit(v)
}

// EscapeTerm is the Term-level counterpart of EscapeValue, used by the
// node compiler for _left/_right/_value slots.
func (ctx *Context) EscapeTerm(t sqlast.Term) (string, error) {
	if t.IsAbsent() {
		return "NULL", nil
	}
	if n, ok := t.Node(); ok {
		return ctx.CompileNode(n)
	}
	if items, ok := t.List(); ok {
		vals := make([]any, len(items))
		for i, it := range items {
			vals[i] = it
		}
		return ctx.EscapeArray(vals, false)
	}
	if b, ok := t.Blob(); ok {
		return ctx.EscapeBuffer(b)
	}
	v, _ := t.Scalar()
	return ctx.escapeImplicit(v)
}

func (ctx *Context) escapeExplicit(v any, explicit sqlast.ExplicitType) (string, error) {
	switch explicit {
	case sqlast.TypeBoolean:
		return ctx.escapeExplicitBoolean(v)
	case sqlast.TypeInteger:
		return ctx.escapeExplicitInteger(v)
	case sqlast.TypeNumber:
		return ctx.escapeExplicitNumber(v)
	case sqlast.TypeString:
		return ctx.escapeExplicitString(v)
	case sqlast.TypeArray:
		seq, err := toSlice(v)
		if err != nil {
			return "", err
		}
		return ctx.EscapeArray(seq, false)
	case sqlast.TypeValues:
		seq, err := toSlice(v)
		if err != nil {
			return "", err
		}
		return ctx.EscapeValues(seq)
	case sqlast.TypeJSON:
		if v == nil {
			return "NULL", nil
		}
		return ctx.EscapeJSON(v)
	case sqlast.TypeRaw:
		s, _ := v.(string)
		return s, nil
	default:
		return "", sqlast.WrapValueError(sqlast.ErrUnknownExplicitType, "unknown explicit type %q", explicit)
	}
}

func toSlice(v any) ([]any, error) {
	switch s := v.(type) {
	case []any:
		return s, nil
	case []sqlast.Term:
		out := make([]any, len(s))
		for i, t := range s {
			out[i] = t
		}
		return out, nil
	default:
		return nil, sqlast.NewValueError("expected a sequence, got %T", v)
	}
}

func (ctx *Context) escapeExplicitBoolean(v any) (string, error) {
	switch b := v.(type) {
	case bool:
		return ctx.boolLiteral(b), nil
	case int:
		if b == 0 {
			return ctx.boolLiteral(false), nil
		}
		if b == 1 {
			return ctx.boolLiteral(true), nil
		}
	case string:
		if val, ok := boolStrings[strings.ToLower(b)]; ok {
			return ctx.boolLiteral(val), nil
		}
	}
	return "", sqlast.WrapValueError(sqlast.ErrInvalidBoolean, "cannot escape %v (%T) as boolean", v, v)
}

func (ctx *Context) boolLiteral(b bool) string {
	if ctx.Features.NativeBoolean {
		if b {
			return "TRUE"
		}
		return "FALSE"
	}
	if b {
		return "1"
	}
	return "0"
}

func (ctx *Context) escapeExplicitInteger(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		if !math.IsInf(n, 0) && n == math.Trunc(n) {
			return strconv.FormatInt(int64(n), 10), nil
		}
	case string:
		if integerRE.MatchString(n) {
			return n, nil
		}
	}
	return "", sqlast.WrapValueError(sqlast.ErrInvalidInteger, "cannot escape %v (%T) as integer", v, v)
}

func (ctx *Context) escapeExplicitNumber(v any) (string, error) {
	switch n := v.(type) {
	case float64:
		return ctx.EscapeNumber(n)
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case string:
		switch strings.ToLower(n) {
		case "nan", "infinity", "-infinity":
			return ctx.EscapeNumber(specialFloat(n))
		}
		if scientificRE.MatchString(n) {
			return n, nil
		}
	}
	return "", sqlast.WrapValueError(sqlast.ErrInvalidNumber, "cannot escape %v (%T) as number", v, v)
}

func specialFloat(s string) float64 {
	switch strings.ToLower(s) {
	case "nan":
		return math.NaN()
	case "infinity":
		return math.Inf(1)
	case "-infinity":
		return math.Inf(-1)
	}
	return 0
}

func (ctx *Context) escapeExplicitString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return ctx.EscapeString(s)
	case bool:
		return ctx.EscapeString(strconv.FormatBool(s))
	case int, int64, float64:
		return ctx.EscapeString(fmt.Sprintf("%v", s))
	default:
		b, err := json.Marshal(s)
		if err != nil {
			return "", sqlast.WrapValueError(sqlast.ErrUnrepresentable, "cannot JSON-encode %T for string escaping: %v", v, err)
		}
		return ctx.EscapeString(string(b))
	}
}

// escapeImplicit deduces the escaping path from v's dynamic type, per
// the Context.escape_value without-explicit-type rules.
func (ctx *Context) escapeImplicit(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil
	case string:
		return ctx.EscapeString(val)
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return ctx.EscapeNumber(val)
	case bool:
		return ctx.boolLiteral(val), nil
	case sqlast.Node:
		return ctx.CompileNode(val)
	case []byte:
		return ctx.EscapeBuffer(val)
	case []any:
		return ctx.EscapeArray(val, false)
	case []sqlast.Term:
		seq := make([]any, len(val))
		for i, t := range val {
			seq[i] = t
		}
		return ctx.EscapeArray(seq, false)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", sqlast.WrapValueError(sqlast.ErrUnrepresentable, "cannot represent %T: %v", val, err)
		}
		return ctx.EscapeString(string(b))
	}
}

// EscapeNumber renders a finite float plainly, or as the dialect's
// special-number token when supported.
func (ctx *Context) EscapeNumber(v float64) (string, error) {
	if math.IsNaN(v) {
		if !ctx.Features.SpecialNumbers {
			return "", sqlast.WrapValueError(sqlast.ErrInvalidNumber, "NaN not supported by %s", ctx.DialectName)
		}
		return ctx.specialNumberToken("NaN"), nil
	}
	if math.IsInf(v, 1) {
		if !ctx.Features.SpecialNumbers {
			return "", sqlast.WrapValueError(sqlast.ErrInvalidNumber, "Infinity not supported by %s", ctx.DialectName)
		}
		return ctx.specialNumberToken("Infinity"), nil
	}
	if math.IsInf(v, -1) {
		if !ctx.Features.SpecialNumbers {
			return "", sqlast.WrapValueError(sqlast.ErrInvalidNumber, "-Infinity not supported by %s", ctx.DialectName)
		}
		return ctx.specialNumberToken("-Infinity"), nil
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

func (ctx *Context) specialNumberToken(token string) string {
	return "'" + token + "'"
}

// EscapeArray renders a sequence as a native PostgreSQL ARRAY literal
// (recursing for nested arrays) or, on dialects without native arrays,
// as a JSON-encoded, string-escaped literal. nested is true for a
// recursive call rendering an inner array on PostgreSQL.
func (ctx *Context) EscapeArray(seq []any, nested bool) (string, error) {
	if !ctx.Features.NativeArray {
		b, err := json.Marshal(normalizeForJSON(seq))
		if err != nil {
			return "", sqlast.WrapValueError(sqlast.ErrUnrepresentable, "cannot JSON-encode array: %v", err)
		}
		return ctx.EscapeString(string(b))
	}
	if len(seq) == 0 {
		return "'{}'", nil
	}
	parts := make([]string, len(seq))
	for i, el := range seq {
		rendered, err := ctx.escapeArrayElement(el)
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	joined := strings.Join(parts, ", ")
	if nested {
		return "[" + joined + "]", nil
	}
	return "ARRAY[" + joined + "]", nil
}

func (ctx *Context) escapeArrayElement(el any) (string, error) {
	switch v := el.(type) {
	case []any:
		return ctx.EscapeArray(v, true)
	case sqlast.Term:
		return ctx.EscapeTerm(v)
	default:
		return ctx.escapeImplicit(v)
	}
}

// EscapeValues renders seq as "(v1, v2, ...)"; nested sequences use
// EscapeArray rather than nesting another VALUES tuple.
func (ctx *Context) EscapeValues(seq []any) (string, error) {
	parts := make([]string, len(seq))
	for i, el := range seq {
		switch v := el.(type) {
		case []any:
			rendered, err := ctx.EscapeArray(v, false)
			if err != nil {
				return "", err
			}
			parts[i] = rendered
		case sqlast.Term:
			rendered, err := ctx.EscapeTerm(v)
			if err != nil {
				return "", err
			}
			parts[i] = rendered
		default:
			rendered, err := ctx.escapeImplicit(v)
			if err != nil {
				return "", err
			}
			parts[i] = rendered
		}
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

// EscapeJSON JSON-encodes v, then string-escapes the result.
func (ctx *Context) EscapeJSON(v any) (string, error) {
	b, err := json.Marshal(normalizeForJSON(v))
	if err != nil {
		return "", sqlast.WrapValueError(sqlast.ErrUnrepresentable, "cannot JSON-encode value: %v", err)
	}
	return ctx.EscapeString(string(b))
}

// normalizeForJSON walks sqlast.Term values out of a plain any tree so
// json.Marshal sees ordinary Go values.
func normalizeForJSON(v any) any {
	switch val := v.(type) {
	case sqlast.Term:
		if s, ok := val.Scalar(); ok {
			return normalizeForJSON(s)
		}
		if items, ok := val.List(); ok {
			out := make([]any, len(items))
			for i, it := range items {
				out[i] = normalizeForJSON(it)
			}
			return out
		}
		if b, ok := val.Blob(); ok {
			return b
		}
		return nil
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeForJSON(e)
		}
		return out
	default:
		return val
	}
}

// EscapeString dispatches to the dialect-specific string-escaping
// algorithm. See postgres.go/mysql.go/sqlite.go for the concrete rules.
func (ctx *Context) EscapeString(s string) (string, error) {
	switch ctx.kind {
	case kindMySQL:
		return escapeStringMySQL(s)
	case kindSQLite:
		return escapeStringSQLite(s)
	default:
		return escapeStringPostgres(s)
	}
}

// EscapeBuffer dispatches to the dialect-specific blob literal.
func (ctx *Context) EscapeBuffer(b []byte) (string, error) {
	if ctx.kind == kindPostgres {
		return `E'\\x` + fmt.Sprintf("%x", b) + "'", nil
	}
	return "x'" + fmt.Sprintf("%x", b) + "'", nil
}
