package dialect_test

import (
	"testing"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlast/sqlast"
	"github.com/sqlast/sqlast/dialect"
)

func mustPostgres(t *testing.T) *dialect.Context {
	t.Helper()
	ctx, err := dialect.New("postgres", dialect.Options{})
	require.NoError(t, err)
	return ctx
}

func TestPostgresSelectBasic(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.SELECT("id", "name").FROM("users").WHERE("age", ">", 18).ORDER_BY(sqlast.SORT("id", "ASC"))

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id", "name" FROM "users" WHERE "age" > 18 ORDER BY "id" ASC;`, sql)

	res, err := pg_query.Parse(sql)
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestPostgresSelectDistinctAndJoin(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.SELECT().DISTINCT().
		FROM("orders").
		INNER_JOIN("customers", sqlast.EQ(sqlast.COL("orders", "customer_id"), sqlast.COL("customers", "id")))

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT DISTINCT * FROM "orders" INNER JOIN "customers" ON "orders"."customer_id" = "customers"."id";`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestPostgresWhereEqNullRewritesToIs(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.SELECT("id").FROM("users").WHERE("deleted_at", nil)

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "users" WHERE "deleted_at" IS NULL;`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestPostgresWhereAndOrWrapping(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.SELECT("id").FROM("t").
		WHERE("a", "=", 1).
		WHERE("b", "=", 2).
		OR_WHERE("c", "=", 3)

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "t" WHERE ("a" = 1 AND "b" = 2) OR "c" = 3;`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestPostgresInsertMultiRowWithDefault(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.INSERT("users",
		sqlast.R("id", 1, "name", "alice"),
		sqlast.R("id", 2),
	).RETURNING("id")

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO \"users\" (\"id\", \"name\") VALUES (1, 'alice'), (2, DEFAULT) RETURNING \"id\";", sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestPostgresUpdateRequiresExactlyOneRow(t *testing.T) {
	assert.Panics(t, func() {
		sqlast.UPDATE("users").SET(sqlast.R("a", 1), sqlast.R("b", 2))
	})
}

func TestPostgresUpdateCompiles(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.UPDATE("users", sqlast.R("name", "bob")).WHERE("id", "=", 1).RETURNING("id", "name")

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "users" SET "name" = 'bob' WHERE "id" = 1 RETURNING "id", "name";`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestPostgresDeleteWithUsing(t *testing.T) {
	ctx := mustPostgres(t)
	q := sqlast.DELETE("orders").USING("customers").WHERE(sqlast.EQ(sqlast.COL("orders", "customer_id"), sqlast.COL("customers", "id")))

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "orders" USING "customers" WHERE "orders"."customer_id" = "customers"."id";`, sql)

	_, err = pg_query.Parse(sql)
	require.NoError(t, err)
}

func TestPostgresUnionParenthesizesCompoundMembers(t *testing.T) {
	ctx := mustPostgres(t)
	inner := sqlast.UNION(sqlast.SELECT("id").FROM("a"), sqlast.SELECT("id").FROM("b"))
	q := sqlast.UNION_ALL(sqlast.SELECT("id").FROM("c"), inner)

	sql, err := ctx.CompileQuery(q)
	require.NoError(t, err)
	assert.Equal(t, `SELECT "id" FROM "c" UNION ALL (SELECT "id" FROM "a" UNION SELECT "id" FROM "b");`, sql)
}

func TestPostgresEscapeStringUsesExtendedSyntaxOnlyWhenNeeded(t *testing.T) {
	ctx := mustPostgres(t)

	plain, err := ctx.EscapeString("hello")
	require.NoError(t, err)
	assert.Equal(t, "'hello'", plain)

	withQuote, err := ctx.EscapeString("it's")
	require.NoError(t, err)
	assert.Equal(t, `E'it\'s'`, withQuote)

	withNewline, err := ctx.EscapeString("a\nb")
	require.NoError(t, err)
	assert.Equal(t, `E'a\nb'`, withNewline)
}

func TestPostgresEscapeIdentifierRejectsNul(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.EscapeIdentifier("a\x00b")
	assert.Error(t, err)
}

func TestPostgresEscapeStringRejectsNul(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.EscapeString("a\x00b")
	assert.ErrorIs(t, err, sqlast.ErrNulByte)

	var ce *sqlast.CompileError
	assert.ErrorAs(t, err, &ce)
}

func TestPostgresEscapeArrayNative(t *testing.T) {
	ctx := mustPostgres(t)
	rendered, err := ctx.EscapeArray([]any{1, 2, []any{3, 4}}, false)
	require.NoError(t, err)
	assert.Equal(t, "ARRAY[1, 2, [3, 4]]", rendered)

	empty, err := ctx.EscapeArray(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "'{}'", empty)
}

func TestPostgresSubstituteDollarMarks(t *testing.T) {
	ctx := mustPostgres(t)
	out, err := ctx.Substitute("name = $1 AND age > $2", []any{"bob", 18})
	require.NoError(t, err)
	assert.Equal(t, "name = 'bob' AND age > 18", out)
}

func TestPostgresSubstituteSkipsQuotedRegions(t *testing.T) {
	ctx := mustPostgres(t)
	out, err := ctx.Substitute(`"col?" = ?`, []any{5})
	require.NoError(t, err)
	assert.Equal(t, `"col?" = 5`, out)
}

func TestPostgresSubstituteMixedMarksIsError(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.Substitute("a = ? AND b = $1", []any{1, 2})
	assert.ErrorIs(t, err, sqlast.ErrMixedMarks)
}

func TestPostgresSubstituteOutOfRangeBinding(t *testing.T) {
	ctx := mustPostgres(t)
	_, err := ctx.Substitute("a = $2", []any{1})
	assert.ErrorIs(t, err, sqlast.ErrBindingOutOfRange)
}

func TestPostgresRawCompiles(t *testing.T) {
	ctx := mustPostgres(t)
	sql, err := ctx.Compile(sqlast.RAW("price * ?", 2))
	require.NoError(t, err)
	assert.Equal(t, "price * 2", sql)
}

func TestPostgresCaseWhen(t *testing.T) {
	ctx := mustPostgres(t)
	node := sqlast.CASE().When(sqlast.EQ(sqlast.COL("status"), "active"), 1).ELSE(0).As("is_active")
	sql, err := ctx.Compile(node)
	require.NoError(t, err)
	assert.Equal(t, `CASE WHEN "status" = 'active' THEN 1 ELSE 0 END AS "is_active"`, sql)
}

func TestPostgresFuncGenericAndRegistered(t *testing.T) {
	ctx := mustPostgres(t)

	sql, err := ctx.Compile(sqlast.FUNC("SOME_UDF", sqlast.COL("x"), 1))
	require.NoError(t, err)
	assert.Equal(t, `SOME_UDF("x", 1)`, sql)

	sql, err = ctx.Compile(sqlast.FUNC("COUNT", sqlast.STAR()).Distinct())
	require.NoError(t, err)
	assert.Equal(t, "COUNT(DISTINCT *)", sql)

	sql, err = ctx.Compile(sqlast.FUNC("RANDOM"))
	require.NoError(t, err)
	assert.Equal(t, "RANDOM()", sql)
}

func TestPostgresSortNullsFirstLastEmittedLiterally(t *testing.T) {
	ctx := mustPostgres(t)
	sql, err := ctx.Compile(sqlast.SORT("updated_at", "DESC", "NULLS LAST"))
	require.NoError(t, err)
	assert.Equal(t, `"updated_at" DESC NULLS LAST`, sql)
}
