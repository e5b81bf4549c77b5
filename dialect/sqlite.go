package dialect

import (
	"fmt"
	"strings"
)

func init() {
	Register("sqlite", newSQLiteContext)
	Register("sqlite3", newSQLiteContext)
}

func newSQLiteContext(opts Options) *Context {
	features := Features{
		Quote:             QuoteDouble,
		NativeBoolean:     false,
		NativeArray:       false,
		NullsFirstLast:    false,
		NullsSortBottom:   false,
		Returning:         true,
		ReturningAsOutput: false,
		SpecialNumbers:    false,
		LimitBeforeOffset: true,
		NoLimitToken:      "-1",
	}
	return newContext("sqlite", kindSQLite, features, opts)
}

func isSQLiteControlByte(c byte) bool {
	return c < 0x20 || c == 0x7f
}

// escapeStringSQLite splits s into alternating text and control-byte
// runs: text runs are '...'-quoted with '' doubling, binary runs become
// x'HH..' blob literals, and adjacent runs are joined with ||. An empty
// string compiles to ''.
func escapeStringSQLite(s string) (string, error) {
	if s == "" {
		return "''", nil
	}
	return buildSQLiteLiteral(s)
}

func buildSQLiteLiteral(s string) (string, error) {
	var parts []string
	i := 0
	for i < len(s) {
		if isSQLiteControlByte(s[i]) {
			j := i
			for j < len(s) && isSQLiteControlByte(s[j]) {
				j++
			}
			parts = append(parts, "x'"+fmt.Sprintf("%x", s[i:j])+"'")
			i = j
			continue
		}
		j := i
		for j < len(s) && !isSQLiteControlByte(s[j]) {
			j++
		}
		parts = append(parts, "'"+strings.ReplaceAll(s[i:j], "'", "''")+"'")
		i = j
	}
	if len(parts) == 0 {
		return "''", nil
	}
	return strings.Join(parts, " || "), nil
}
