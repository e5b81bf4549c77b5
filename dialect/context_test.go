package dialect_test

import (
	"testing"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlast/sqlast"
	"github.com/sqlast/sqlast/dialect"
)

func TestNewUnknownDialect(t *testing.T) {
	_, err := dialect.New("oracle", dialect.Options{})
	assert.ErrorIs(t, err, sqlast.ErrUnsupportedByDialect)
}

func TestHasRegisteredDialects(t *testing.T) {
	for _, name := range []string{"postgres", "postgresql", "mysql", "mariadb", "sqlite", "sqlite3"} {
		assert.True(t, dialect.Has(name), name)
	}
	assert.False(t, dialect.Has("mssql"))
}

// CompileQuery must be CompileNode plus a trailing semicolon, for any
// executable node.
func TestCompileQueryIsCompilePlusSemicolon(t *testing.T) {
	ctx := mustPostgres(t)
	queries := []sqlast.Query{
		sqlast.SELECT("a").FROM("x").WHERE("a", "=", 1),
		sqlast.INSERT("x", sqlast.R("a", 1)),
		sqlast.UPDATE("x", sqlast.R("a", 1)),
		sqlast.DELETE("x"),
		sqlast.UNION(sqlast.SELECT("a").FROM("x"), sqlast.SELECT("a").FROM("y")),
	}
	for _, q := range queries {
		node, err := ctx.Compile(q)
		require.NoError(t, err)
		query, err := ctx.CompileQuery(q)
		require.NoError(t, err)
		assert.Equal(t, node+";", query)
	}
}

// A template with no markers passes through Substitute unchanged.
func TestSubstituteStableWithoutMarks(t *testing.T) {
	ctx := mustPostgres(t)
	for _, tmpl := range []string{
		"",
		"SELECT 1",
		`"quoted?" = 'li''teral'`,
		"E'esc\\'aped'",
	} {
		out, err := ctx.Substitute(tmpl, nil)
		require.NoError(t, err)
		assert.Equal(t, tmpl, out)
	}
}

// Identifier round-trip: quote-open + join(segments, close+"."+open) +
// quote-close, for segments with no NUL and no dot.
func TestEscapeIdentifierRoundTrip(t *testing.T) {
	ctx := mustPostgres(t)
	out, err := ctx.EscapeIdentifier("schema", "table", "col")
	require.NoError(t, err)
	assert.Equal(t, `"schema"."table"."col"`, out)

	out, err = ctx.EscapeIdentifier("schema.table.col")
	require.NoError(t, err)
	assert.Equal(t, `"schema"."table"."col"`, out)
}

func TestEscapeIdentifierBoundaries(t *testing.T) {
	ctx := mustPostgres(t)

	empty, err := ctx.EscapeIdentifier()
	require.NoError(t, err)
	assert.Equal(t, `""`, empty)

	gaps, err := ctx.EscapeIdentifier("", "a", "", "b")
	require.NoError(t, err)
	assert.Equal(t, `"a"."b"`, gaps)

	star, err := ctx.EscapeIdentifier("t", "*")
	require.NoError(t, err)
	assert.Equal(t, `"t".*`, star)

	quoted, err := ctx.EscapeIdentifier(`wei"rd`)
	require.NoError(t, err)
	assert.Equal(t, `"wei""rd"`, quoted)
}

// The six concrete scenarios, PG compact.
func TestConcretePostgresScenarios(t *testing.T) {
	ctx := mustPostgres(t)

	sql, err := ctx.CompileQuery(sqlast.SELECT([]any{"a", "b", "c"}).FROM("x").WHERE("a", "IN", []any{42, 23}))
	require.NoError(t, err)
	assert.Equal(t, `SELECT "a", "b", "c" FROM "x" WHERE "a" IN (42, 23);`, sql)

	sql, err = ctx.CompileQuery(sqlast.UPDATE("x").VALUES(sqlast.R("a", 1, "b", sqlast.OP(sqlast.COL("b"), "+", 1))))
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "x" SET "a" = 1, "b" = "b" + 1;`, sql)

	sql, err = ctx.CompileQuery(sqlast.INSERT("x").VALUES(sqlast.R("a", 0, "b", false, "c", "String")).RETURNING("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("a", "b", "c") VALUES (0, FALSE, 'String') RETURNING "a", "b", "c";`, sql)

	sql, err = ctx.Compile(sqlast.UNION(
		sqlast.SELECT("a").FROM("x"),
		sqlast.UNION(sqlast.SELECT("a").FROM("y"), sqlast.SELECT("a").FROM("z")),
	))
	require.NoError(t, err)
	assert.Equal(t, `SELECT "a" FROM "x" UNION (SELECT "a" FROM "y" UNION SELECT "a" FROM "z")`, sql)

	out, err := ctx.Substitute("a = ?, b = '?', c = ?", []any{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "a = 1, b = '?', c = 2", out)

	sql, err = ctx.Compile(sqlast.SELECT().FROM("x").ORDER_BY("a", "ASC").ORDER_BY("b", "DESC"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" ORDER BY "a" ASC, "b" DESC`, sql)
}

func TestBitExactDefaultSelect(t *testing.T) {
	ctx := mustPostgres(t)
	sql, err := ctx.CompileQuery(sqlast.SELECT().FROM("x").WHERE("a", "=", 1))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" WHERE "a" = 1;`, sql)
}

func TestOrderByColumnListSharesDirection(t *testing.T) {
	ctx := mustPostgres(t)
	sql, err := ctx.Compile(sqlast.SELECT().FROM("x").ORDER_BY([]any{"a", "b"}, "DESC"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" ORDER BY "a" DESC, "b" DESC`, sql)
}

func TestPostgresOffsetBeforeLimit(t *testing.T) {
	ctx := mustPostgres(t)
	sql, err := ctx.CompileQuery(sqlast.SELECT("id").FROM("users").LIMIT(10).OFFSET(5))
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "users" OFFSET 5 LIMIT 10;`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestExplicitBooleanAcceptsDocumentedSet(t *testing.T) {
	ctx := mustPostgres(t)

	truthy := []any{true, 1, "t", "TRUE", "y", "yes", "on", "1"}
	for _, v := range truthy {
		out, err := ctx.EscapeValue(v, sqlast.TypeBoolean)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, "TRUE", out, "%v", v)
	}
	falsy := []any{false, 0, "f", "False", "n", "no", "off", "0"}
	for _, v := range falsy {
		out, err := ctx.EscapeValue(v, sqlast.TypeBoolean)
		require.NoError(t, err, "%v", v)
		assert.Equal(t, "FALSE", out, "%v", v)
	}

	_, err := ctx.EscapeValue("maybe", sqlast.TypeBoolean)
	assert.ErrorIs(t, err, sqlast.ErrInvalidBoolean)
	_, err = ctx.EscapeValue(2, sqlast.TypeBoolean)
	assert.ErrorIs(t, err, sqlast.ErrInvalidBoolean)
}

func TestExplicitIntegerAcceptsExactAndStringForms(t *testing.T) {
	ctx := mustPostgres(t)

	out, err := ctx.EscapeValue(42, sqlast.TypeInteger)
	require.NoError(t, err)
	assert.Equal(t, "42", out)

	out, err = ctx.EscapeValue("-17", sqlast.TypeInteger)
	require.NoError(t, err)
	assert.Equal(t, "-17", out)

	out, err = ctx.EscapeValue(float64(3), sqlast.TypeInteger)
	require.NoError(t, err)
	assert.Equal(t, "3", out)

	_, err = ctx.EscapeValue(3.5, sqlast.TypeInteger)
	assert.ErrorIs(t, err, sqlast.ErrInvalidInteger)
	_, err = ctx.EscapeValue("12abc", sqlast.TypeInteger)
	assert.ErrorIs(t, err, sqlast.ErrInvalidInteger)
}

func TestExplicitNumberScientificAndSpecials(t *testing.T) {
	pg := mustPostgres(t)

	out, err := pg.EscapeValue("6.02e23", sqlast.TypeNumber)
	require.NoError(t, err)
	assert.Equal(t, "6.02e23", out)

	out, err = pg.EscapeValue("NaN", sqlast.TypeNumber)
	require.NoError(t, err)
	assert.Equal(t, "'NaN'", out)

	out, err = pg.EscapeValue("-Infinity", sqlast.TypeNumber)
	require.NoError(t, err)
	assert.Equal(t, "'-Infinity'", out)

	my := mustMySQL(t)
	_, err = my.EscapeValue("NaN", sqlast.TypeNumber)
	assert.ErrorIs(t, err, sqlast.ErrInvalidNumber)
}

func TestExplicitValuesRendersTuple(t *testing.T) {
	ctx := mustPostgres(t)
	out, err := ctx.EscapeValue([]any{1, "two", true}, sqlast.TypeValues)
	require.NoError(t, err)
	assert.Equal(t, "(1, 'two', TRUE)", out)
}

func TestJSONValueDistinguishesAbsentFromNull(t *testing.T) {
	ctx := mustPostgres(t)

	absent, err := ctx.Compile(sqlast.JSON_VAL(nil))
	require.NoError(t, err)
	assert.Equal(t, "NULL", absent)

	obj, err := ctx.Compile(sqlast.JSON_VAL(map[string]any{"a": 1}))
	require.NoError(t, err)
	assert.Equal(t, `'{"a":1}'`, obj)
}

func TestRawExplicitTypeIsUntouched(t *testing.T) {
	ctx := mustPostgres(t)
	out, err := ctx.EscapeValue("now() - interval '1 day'", sqlast.TypeRaw)
	require.NoError(t, err)
	assert.Equal(t, "now() - interval '1 day'", out)
}

func TestUnknownExplicitTypeFails(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.EscapeValue(1, sqlast.ExplicitType("decimal"))
	assert.ErrorIs(t, err, sqlast.ErrUnknownExplicitType)
}

func TestUpdateColumnTypeHints(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.UPDATE("x", sqlast.R("flag", "yes", "n", "12")).
		TYPES(map[string]sqlast.ExplicitType{"flag": sqlast.TypeBoolean, "n": sqlast.TypeInteger})

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "x" SET "flag" = TRUE, "n" = 12;`, sql)
}

func TestInsertColumnTypeHintSkipsNodeValues(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.INSERT("x", sqlast.R("flag", "on", "expr", sqlast.COL("other"))).
		TYPES(map[string]sqlast.ExplicitType{"flag": sqlast.TypeBoolean, "expr": sqlast.TypeBoolean})

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "x" ("flag", "expr") VALUES (TRUE, "other");`, sql)
}

func TestBetweenOperatorCompiles(t *testing.T) {
	ctx := mustPostgres(t)

	sql, err := ctx.CompileQuery(sqlast.SELECT().FROM("x").WHERE("a", "BETWEEN", []any{1, 10}))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" WHERE "a" BETWEEN 1 AND 10;`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)

	sql, err = ctx.Compile(sqlast.OP(sqlast.COL("a"), "NOT BETWEEN", []any{1, 10}))
	require.NoError(t, err)
	assert.Equal(t, `"a" NOT BETWEEN 1 AND 10`, sql)
}

func TestBetweenRequiresTwoBounds(t *testing.T) {
	ctx := mustPostgres(t)

	_, err := ctx.Compile(sqlast.OP(sqlast.COL("a"), "BETWEEN", []any{1}))
	assert.Error(t, err)

	_, err = ctx.Compile(sqlast.OP(sqlast.COL("a"), "BETWEEN", 1))
	assert.Error(t, err)
}

func TestImplicitCrossJoinFromChain(t *testing.T) {
	ctx := mustPostgres(t)
	sql, err := ctx.CompileQuery(sqlast.SELECT().FROM("a").FROM("b"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "a" CROSS JOIN "b";`, sql)
}

func TestJoinUsingColumns(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.SELECT().FROM("a").INNER_JOIN("b", []string{"id", "tenant"})
	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "a" INNER JOIN "b" USING ("id", "tenant");`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestSubqueryInFromIsParenthesized(t *testing.T) {
	ctx := mustPostgres(t)
	inner := sqlast.SELECT("id").FROM("raw_events")
	sql, err := ctx.CompileQuery(sqlast.SELECT().FROM(inner))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM (SELECT "id" FROM "raw_events");`, sql)
}

func TestSubqueryInExpressionIsParenthesized(t *testing.T) {
	ctx := mustPostgres(t)
	inner := sqlast.SELECT("id").FROM("banned")
	sql, err := ctx.CompileQuery(sqlast.SELECT("id").FROM("users").WHERE("id", "IN", inner))
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "users" WHERE "id" IN (SELECT "id" FROM "banned");`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestAliasedSubqueryRendersParensAndAlias(t *testing.T) {
	ctx := mustPostgres(t)
	inner := sqlast.SELECT("id").FROM("raw_events").As("e")
	sql, err := ctx.CompileQuery(sqlast.SELECT().FROM(inner))
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM (SELECT "id" FROM "raw_events") AS "e";`, sql)
}

func TestAliasQuotingFollowsDialect(t *testing.T) {
	pg := mustPostgres(t)
	sql, err := pg.Compile(sqlast.COL("a").As("the name"))
	require.NoError(t, err)
	assert.Equal(t, `"a" AS "the name"`, sql)

	my := mustMySQL(t)
	sql, err = my.Compile(sqlast.COL("a").As("the name"))
	require.NoError(t, err)
	assert.Equal(t, "`a` AS `the name`", sql)
}

func TestPrettyPrintingSeparatorsAndIndent(t *testing.T) {
	ctx, err := dialect.New("postgres", dialect.Options{Pretty: true})
	require.NoError(t, err)

	sql, err := ctx.CompileQuery(sqlast.SELECT("a", "b").FROM("x").WHERE("a", "=", 1).LIMIT(10))
	require.NoError(t, err)
	assert.Equal(t, "SELECT \"a\",\n  \"b\"\nFROM \"x\"\nWHERE \"a\" = 1\nLIMIT 10;", sql)
}

func TestPrettyPrintingIndentsNestedSubquery(t *testing.T) {
	ctx, err := dialect.New("postgres", dialect.Options{Pretty: true})
	require.NoError(t, err)

	inner := sqlast.SELECT("id").FROM("raw_events")
	sql, err := ctx.CompileQuery(sqlast.SELECT().FROM(inner))
	require.NoError(t, err)
	assert.Equal(t, "SELECT *\nFROM (SELECT \"id\"\n  FROM \"raw_events\");", sql)
}

func TestFuncArityChecked(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.Compile(sqlast.FUNC("UPPER", "a", "b"))
	assert.Error(t, err)
	var ce *sqlast.CompileError
	assert.ErrorAs(t, err, &ce)
}

func TestConditionMapCompilesAsAndOfEqualities(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.SELECT().FROM("x").WHERE(sqlast.R("a", 1, "b", nil))
	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "x" WHERE "a" = 1 AND "b" IS NULL;`, sql)
}

func TestEscapeValueImplicitObjectBecomesJSONString(t *testing.T) {
	ctx := mustPostgres(t)
	out, err := ctx.EscapeValue(map[string]any{"k": "v"}, "")
	require.NoError(t, err)
	assert.Equal(t, `'{"k":"v"}'`, out)
}

// Escaping a previously escaped literal yields another valid literal
// whose content is the first result.
func TestEscapeStringLayersCleanly(t *testing.T) {
	ctx := mustPostgres(t)
	inner, err := ctx.EscapeString("it's")
	require.NoError(t, err)
	outer, err := ctx.EscapeString(inner)
	require.NoError(t, err)
	assert.Equal(t, `E'E\'it\\\'s\''`, outer)
}

func TestSubstituteZeroIndexIsError(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.Substitute("a = $0", []any{1, 2})
	assert.ErrorIs(t, err, sqlast.ErrBindingOutOfRange)
}

func TestVersionOptionParsedOntoContext(t *testing.T) {
	ctx, err := dialect.New("postgres", dialect.Options{Version: "14.2"})
	require.NoError(t, err)
	assert.Equal(t, sqlast.Version{Major: 14, Minor: 2}, ctx.Version)
	assert.True(t, ctx.Version.AtLeast(sqlast.Version{Major: 8, Minor: 2}))
}
