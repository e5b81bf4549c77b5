package dialect

import "strings"

func init() {
	Register("mysql", newMySQLContext)
	Register("mariadb", newMySQLContext)
}

func newMySQLContext(opts Options) *Context {
	features := Features{
		Quote:             QuoteBacktick,
		NativeBoolean:     false,
		NativeArray:       false,
		NullsFirstLast:    false,
		NullsSortBottom:   false,
		Returning:         false,
		ReturningAsOutput: false,
		SpecialNumbers:    false,
		LimitBeforeOffset: true,
		NoLimitToken:      "18446744073709551615",
	}
	return newContext("mysql", kindMySQL, features, opts)
}

var mysqlReplacer = strings.NewReplacer(
	"\x00", `\0`,
	"\b", `\b`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	"\x1a", `\Z`,
	"'", "''",
	`\`, `\\`,
)

// escapeStringMySQL always renders a plain '...' literal (MySQL has no
// E'...' extended syntax); backtick-quoted identifiers are a separate
// concern handled by EscapeIdentifier.
func escapeStringMySQL(s string) (string, error) {
	return "'" + mysqlReplacer.Replace(s) + "'", nil
}
