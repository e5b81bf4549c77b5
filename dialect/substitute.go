package dialect

import (
	"strconv"
	"strings"

	"github.com/sqlast/sqlast"
)

// Substitute scans template once, replacing `?` or `$N` markers found
// outside quoted regions with escape_value(bindings[i]). The template
// may use either style but not both; mixing is a compile error. `?`
// consumes bindings in order; `$N` (N >= 1) binds to index N-1.
func (ctx *Context) Substitute(template string, bindings []any) (string, error) {
	var out strings.Builder
	runes := []rune(template)
	n := len(runes)

	mode := 0 // 0 = undecided, 1 = '?', 2 = '$'
	nextQuestion := 0

	for i := 0; i < n; i++ {
		c := runes[i]

		switch c {
		case '"':
			start := i
			i++
			for i < n {
				if runes[i] == '"' {
					if i+1 < n && runes[i+1] == '"' {
						i += 2
						continue
					}
					break
				}
				i++
			}
			end := i + 1
			if end > n {
				end = n
			}
			out.WriteString(string(runes[start:end]))
			continue

		case '\'':
			start := i
			cStyle := i > 0 && (runes[i-1] == 'E' || runes[i-1] == 'e')
			i++
			for i < n {
				if cStyle && runes[i] == '\\' {
					i += 2
					continue
				}
				if runes[i] == '\'' {
					if !cStyle && i+1 < n && runes[i+1] == '\'' {
						i += 2
						continue
					}
					break
				}
				i++
			}
			end := i + 1
			if end > n {
				end = n
			}
			out.WriteString(string(runes[start:end]))
			continue

		case '?':
			if mode == 2 {
				return "", sqlast.WrapCompileError(sqlast.ErrMixedMarks, "encountered '?' after '$N' marks were used")
			}
			mode = 1
			if nextQuestion >= len(bindings) {
				return "", sqlast.WrapCompileError(sqlast.ErrBindingOutOfRange, "binding index %d out of range (have %d bindings)", nextQuestion, len(bindings))
			}
			rendered, err := ctx.escapeImplicit(bindings[nextQuestion])
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
			nextQuestion++
			continue

		case '$':
			j := i + 1
			for j < n && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			if j == i+1 {
				out.WriteRune(c)
				continue
			}
			if mode == 1 {
				return "", sqlast.WrapCompileError(sqlast.ErrMixedMarks, "encountered '$N' after '?' marks were used")
			}
			mode = 2
			num, _ := strconv.Atoi(string(runes[i+1 : j]))
			idx := num - 1
			if num < 1 || idx >= len(bindings) {
				return "", sqlast.WrapCompileError(sqlast.ErrBindingOutOfRange, "binding index %d out of range (have %d bindings)", num, len(bindings))
			}
			rendered, err := ctx.escapeImplicit(bindings[idx])
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
			i = j - 1
			continue

		default:
			out.WriteRune(c)
		}
	}

	return out.String(), nil
}
