package dialect

import (
	"strings"

	"github.com/sqlast/sqlast"
	"github.com/sqlast/sqlast/registry"
)

// Compile renders any expression node (not necessarily a top-level
// query) to SQL text with no trailing semicolon.
func (ctx *Context) Compile(n sqlast.Node) (string, error) {
	return ctx.CompileNode(n)
}

// CompileQuery renders a top-level Select/Insert/Update/Delete/
// CompoundQuery with a trailing semicolon.
func (ctx *Context) CompileQuery(q sqlast.Query) (string, error) {
	body, err := ctx.CompileNode(q)
	if err != nil {
		return "", err
	}
	return body + ";", nil
}

// CompileNode dispatches on n's concrete type. It is the single
// recursive entry point every child Term's Node case funnels through.
func (ctx *Context) CompileNode(n sqlast.Node) (string, error) {
	switch v := n.(type) {
	case *sqlast.Raw:
		return ctx.compileRaw(v)
	case *sqlast.Identifier:
		return ctx.compileIdentifier(v)
	case *sqlast.Value:
		return ctx.compileValue(v)
	case *sqlast.UnaryOp:
		return ctx.compileUnary(v)
	case *sqlast.BinaryOp:
		return ctx.compileBinary(v)
	case *sqlast.Logical:
		return ctx.compileLogicalNested(v)
	case *sqlast.Func:
		return ctx.compileFunc(v)
	case *sqlast.Case:
		return ctx.compileCase(v)
	case *sqlast.Sort:
		return ctx.compileSort(v)
	case *sqlast.Join:
		return ctx.compileJoin(v)
	case *sqlast.ConditionMap:
		return ctx.compileConditionMap(v)
	case *sqlast.Select:
		return ctx.compileSelect(v)
	case *sqlast.Insert:
		return ctx.compileInsert(v)
	case *sqlast.Update:
		return ctx.compileUpdate(v)
	case *sqlast.Delete:
		return ctx.compileDelete(v)
	case *sqlast.CompoundQuery:
		return ctx.compileCompound(v)
	default:
		return "", sqlast.NewCompileError("unknown node kind %q (%T)", n.Kind(), n)
	}
}

func (ctx *Context) withAlias(s, alias string) string {
	if alias == "" {
		return s
	}
	doubled := strings.ReplaceAll(alias, ctx.quoteAfter, ctx.quoteAfter+ctx.quoteAfter)
	return s + " AS " + ctx.quoteBefore + doubled + ctx.quoteAfter
}

// needsSubqueryParens reports whether n, appearing as a nested relation
// or expression operand, must be wrapped in parentheses. An aliased
// Select/CompoundQuery parenthesizes itself while rendering the alias.
func needsSubqueryParens(n sqlast.Node) bool {
	switch n.(type) {
	case *sqlast.Select, *sqlast.CompoundQuery:
		return n.Alias() == ""
	}
	return false
}

// termToAny unwraps a Term into a plain Go value, Node, or []any so the
// escape_value-family functions (which predate the Term type and work
// off dynamic types) can dispatch on it directly.
func termToAny(t sqlast.Term) any {
	if t.IsAbsent() {
		return nil
	}
	if n, ok := t.Node(); ok {
		return n
	}
	if items, ok := t.List(); ok {
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = termToAny(it)
		}
		return out
	}
	if b, ok := t.Blob(); ok {
		return b
	}
	v, _ := t.Scalar()
	return v
}

func (ctx *Context) compileRaw(r *sqlast.Raw) (string, error) {
	sql := r.SQL
	if r.HasBindings() {
		rendered, err := ctx.Substitute(sql, r.Bindings)
		if err != nil {
			return "", err
		}
		sql = rendered
	}
	return ctx.withAlias(sql, r.Alias()), nil
}

func (ctx *Context) compileIdentifier(i *sqlast.Identifier) (string, error) {
	rendered, err := ctx.EscapeIdentifier(i.Parts...)
	if err != nil {
		return "", err
	}
	return ctx.withAlias(rendered, i.Alias()), nil
}

func (ctx *Context) compileValue(v *sqlast.Value) (string, error) {
	var rendered string
	var err error
	switch {
	case v.Explicit == sqlast.TypeJSON:
		// Only the json explicit type tells absent apart from an
		// explicit null: absent is SQL NULL, null serializes to 'null'.
		if v.Val.IsAbsent() {
			rendered = "NULL"
		} else {
			rendered, err = ctx.EscapeJSON(termToAny(v.Val))
		}
	case v.Explicit != "":
		rendered, err = ctx.EscapeValue(termToAny(v.Val), v.Explicit)
	default:
		rendered, err = ctx.EscapeTerm(v.Val)
	}
	if err != nil {
		return "", err
	}
	return ctx.withAlias(rendered, v.Alias()), nil
}

func (ctx *Context) compileUnary(u *sqlast.UnaryOp) (string, error) {
	operandStr, err := ctx.escapeSideParenthesized(u.Operand)
	if err != nil {
		return "", err
	}
	op := strings.ToUpper(u.Op)
	var rendered string
	switch op {
	case "NOT":
		rendered = "NOT " + operandStr
	case "-":
		rendered = "-" + operandStr
	default:
		rendered = u.Op + " " + operandStr
	}
	return ctx.withAlias(rendered, u.Alias()), nil
}

// escapeSideParenthesized escapes t, wrapping the result in parentheses
// if t is a BinaryOp (so operator precedence survives round-tripping)
// or an unaliased subquery. A Logical parenthesizes itself when it has
// more than one child, so it is never re-wrapped here.
func (ctx *Context) escapeSideParenthesized(t sqlast.Term) (string, error) {
	rendered, err := ctx.EscapeTerm(t)
	if err != nil {
		return "", err
	}
	if n, ok := t.Node(); ok {
		if _, isBinary := n.(*sqlast.BinaryOp); isBinary {
			return "(" + rendered + ")", nil
		}
		if needsSubqueryParens(n) {
			return "(" + ctx.indentBlock(rendered) + ")", nil
		}
	}
	return rendered, nil
}

// escapeRelationTerm escapes a term in relation position (FROM, JOIN
// sides, USING), parenthesizing unaliased subqueries.
func (ctx *Context) escapeRelationTerm(t sqlast.Term) (string, error) {
	rendered, err := ctx.EscapeTerm(t)
	if err != nil {
		return "", err
	}
	if n, ok := t.Node(); ok && needsSubqueryParens(n) {
		return "(" + ctx.indentBlock(rendered) + ")", nil
	}
	return rendered, nil
}

func (ctx *Context) compileBinary(b *sqlast.BinaryOp) (string, error) {
	record, known := registry.LookupOperator(b.Op)

	if known && record.Compile != nil {
		args, err := ctx.binaryCompileArgs(b, record)
		if err != nil {
			return "", err
		}
		if err := record.CheckArity(len(args)); err != nil {
			return "", err
		}
		rendered, err := record.Compile(ctx.DialectName, args)
		if err != nil {
			return "", err
		}
		return ctx.withAlias(rendered, b.Alias()), nil
	}

	leftStr, err := ctx.escapeBinarySide(b.Left, known && record.Flags&registry.FlagLeftValues != 0)
	if err != nil {
		return "", err
	}
	rightStr, err := ctx.escapeBinarySide(b.Right, known && record.Flags&registry.FlagRightValues != 0)
	if err != nil {
		return "", err
	}
	if known {
		if err := record.CheckArity(2); err != nil {
			return "", err
		}
	}

	nameFmt := " " + b.Op + " "
	if known {
		nameFmt = record.NameFmt
	}
	if b.Op == "=" && rightStr == "NULL" {
		nameFmt = " IS "
	}

	return ctx.withAlias(leftStr+nameFmt+rightStr, b.Alias()), nil
}

// binaryCompileArgs flattens a BinaryOp into the escaped argument list
// a specialized operator compiler expects: the left operand first, then
// the right operand — spread into its elements when the operator takes
// more than two (BETWEEN carries both bounds as a list in Right).
func (ctx *Context) binaryCompileArgs(b *sqlast.BinaryOp, record *registry.Record) ([]string, error) {
	leftStr, err := ctx.escapeSideParenthesized(b.Left)
	if err != nil {
		return nil, err
	}
	args := []string{leftStr}
	if record.MinArgs > 2 {
		items, ok := b.Right.List()
		if !ok {
			return nil, sqlast.NewCompileError("%s expects its operands as a list", record.Name)
		}
		for _, it := range items {
			rendered, err := ctx.escapeSideParenthesized(it)
			if err != nil {
				return nil, err
			}
			args = append(args, rendered)
		}
		return args, nil
	}
	rightStr, err := ctx.escapeSideParenthesized(b.Right)
	if err != nil {
		return nil, err
	}
	return append(args, rightStr), nil
}

func (ctx *Context) escapeBinarySide(t sqlast.Term, asValues bool) (string, error) {
	if asValues {
		if items, ok := t.List(); ok {
			seq := make([]any, len(items))
			for i, it := range items {
				seq[i] = termToAny(it)
			}
			return ctx.EscapeValues(seq)
		}
	}
	return ctx.escapeSideParenthesized(t)
}

func (ctx *Context) compileLogicalNested(l *sqlast.Logical) (string, error) {
	body, err := ctx.compileLogicalBody(l)
	if err != nil {
		return "", err
	}
	if len(l.Children) > 1 {
		body = "(" + body + ")"
	}
	return ctx.withAlias(body, l.Alias()), nil
}

// compileLogicalTop renders a Logical as a top-level WHERE/HAVING
// clause body: no enclosing parentheses regardless of child count.
func (ctx *Context) compileLogicalTop(l *sqlast.Logical) (string, error) {
	if l == nil {
		return "", nil
	}
	return ctx.compileLogicalBody(l)
}

func (ctx *Context) compileLogicalBody(l *sqlast.Logical) (string, error) {
	parts := make([]string, len(l.Children))
	for i, c := range l.Children {
		rendered, err := ctx.EscapeTerm(c)
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	sep := " " + l.Op + " "
	return strings.Join(parts, sep), nil
}

func (ctx *Context) compileFunc(f *sqlast.Func) (string, error) {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		rendered, err := ctx.EscapeTerm(a)
		if err != nil {
			return "", err
		}
		args[i] = rendered
	}

	record, known := registry.LookupFunction(f.Name)
	if known {
		if err := record.CheckArity(len(args)); err != nil {
			return "", err
		}
	}
	if known && record.Compile != nil {
		rendered, err := record.Compile(ctx.DialectName, args)
		if err != nil {
			return "", err
		}
		return ctx.withAlias(rendered, f.Alias()), nil
	}

	name := f.Name
	if known {
		name = record.NameFmt
	}
	argStr := strings.Join(args, ", ")
	if f.Flags()&sqlast.FlagDistinct != 0 {
		argStr = "DISTINCT " + argStr
	}
	return ctx.withAlias(name+"("+argStr+")", f.Alias()), nil
}

func (ctx *Context) compileCase(c *sqlast.Case) (string, error) {
	var b strings.Builder
	b.WriteString("CASE")
	for _, w := range c.Whens {
		condStr, err := ctx.EscapeTerm(w.Cond)
		if err != nil {
			return "", err
		}
		thenStr, err := ctx.EscapeTerm(w.Then)
		if err != nil {
			return "", err
		}
		b.WriteString(" WHEN ")
		b.WriteString(condStr)
		b.WriteString(" THEN ")
		b.WriteString(thenStr)
	}
	if !c.Else.IsAbsent() {
		elseStr, err := ctx.EscapeTerm(c.Else)
		if err != nil {
			return "", err
		}
		b.WriteString(" ELSE ")
		b.WriteString(elseStr)
	}
	b.WriteString(" END")
	return ctx.withAlias(b.String(), c.Alias()), nil
}

func (ctx *Context) compileSort(s *sqlast.Sort) (string, error) {
	direction, err := sqlast.ParseSortDirection(s.Direction)
	if err != nil {
		return "", err
	}
	nulls, err := sqlast.ParseSortNulls(s.Nulls)
	if err != nil {
		return "", err
	}
	if err := validateSortExpr(s.Expr); err != nil {
		return "", err
	}

	exprStr, err := ctx.EscapeTerm(s.Expr)
	if err != nil {
		return "", err
	}

	actual := exprStr + " " + direction

	if ctx.Features.NullsFirstLast {
		if nulls != "" {
			actual += " " + nulls
		}
		return actual, nil
	}

	if nulls == "" {
		return actual, nil
	}
	descending := direction == "DESC"
	defaultIsLast := ctx.Features.NullsSortBottom != descending
	requestedIsLast := nulls == "NULLS LAST"
	if defaultIsLast == requestedIsLast {
		return actual, nil
	}
	var keyword string
	if requestedIsLast {
		keyword = "IS NULL"
	} else {
		keyword = "IS NOT NULL"
	}
	synthetic := "(" + exprStr + " " + keyword + ")"
	return synthetic + ", " + actual, nil
}

func validateSortExpr(t sqlast.Term) error {
	if t.IsNode() {
		return nil
	}
	if v, ok := t.Scalar(); ok {
		switch v.(type) {
		case string, int, int64, float64:
			return nil
		}
	}
	return sqlast.WrapCompileError(sqlast.ErrInvalidSortDirection, "ORDER BY expression must be a column, Node, or ordinal number")
}

func (ctx *Context) compileJoin(j *sqlast.Join) (string, error) {
	leftStr, err := ctx.escapeRelationTerm(j.Left)
	if err != nil {
		return "", err
	}
	rightStr, err := ctx.escapeRelationTerm(j.Right)
	if err != nil {
		return "", err
	}
	kind := j.JoinKind
	if kind == "" {
		kind = "CROSS"
	}
	result := leftStr + " " + kind + " JOIN " + rightStr
	if len(j.Using) > 0 {
		cols := make([]string, len(j.Using))
		for i, c := range j.Using {
			rendered, err := ctx.EscapeIdentifier(c)
			if err != nil {
				return "", err
			}
			cols[i] = rendered
		}
		result += " USING (" + strings.Join(cols, ", ") + ")"
	} else if !j.On.IsAbsent() {
		onStr, err := ctx.EscapeTerm(j.On)
		if err != nil {
			return "", err
		}
		result += " ON " + onStr
	}
	return ctx.withAlias(result, j.Alias()), nil
}

func (ctx *Context) compileConditionMap(c *sqlast.ConditionMap) (string, error) {
	parts := make([]string, len(c.Pairs))
	for i, f := range c.Pairs {
		rendered, err := ctx.CompileNode(sqlast.EQ(sqlast.COL(f.Name), f.Value))
		if err != nil {
			return "", err
		}
		parts[i] = rendered
	}
	return ctx.withAlias(strings.Join(parts, " AND "), c.Alias()), nil
}

// escapeColumnValue escapes one INSERT/UPDATE cell. A per-column
// explicit-type hint applies only when the cell holds a plain scalar;
// Node and Term values always compile through their own method.
func (ctx *Context) escapeColumnValue(v any, explicit sqlast.ExplicitType) (string, error) {
	if explicit != "" {
		switch v.(type) {
		case sqlast.Node, sqlast.Term:
		default:
			return ctx.EscapeValue(v, explicit)
		}
	}
	return ctx.EscapeTerm(sqlast.AnyToTerm(v))
}

func (ctx *Context) compileFromChain(table sqlast.Term, joins []sqlast.Term) (string, error) {
	if len(joins) > 0 {
		return ctx.escapeRelationTerm(joins[len(joins)-1])
	}
	if table.IsAbsent() {
		return "", sqlast.WrapCompileError(sqlast.ErrNoTable, "query has no table")
	}
	return ctx.escapeRelationTerm(table)
}

func (ctx *Context) compileSelect(s *sqlast.Select) (string, error) {
	var b strings.Builder
	b.WriteString("SELECT")
	if s.Flags()&sqlast.FlagDistinct != 0 {
		b.WriteString(" DISTINCT")
	}
	if len(s.Fields) == 0 {
		b.WriteString(" *")
	} else {
		fieldStrs := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			rendered, err := ctx.EscapeTerm(f)
			if err != nil {
				return "", err
			}
			fieldStrs[i] = rendered
		}
		b.WriteString(" " + strings.Join(fieldStrs, ctx.comma))
	}

	fromStr, err := ctx.compileFromChain(s.Table, s.Joins)
	if err != nil {
		return "", err
	}
	b.WriteString(ctx.sep + "FROM " + fromStr)

	if whereStr, err := ctx.compileLogicalTop(s.WhereClause); err != nil {
		return "", err
	} else if whereStr != "" {
		b.WriteString(ctx.sep + "WHERE " + whereStr)
	}

	if len(s.GroupBy) > 0 {
		groupStrs := make([]string, len(s.GroupBy))
		for i, g := range s.GroupBy {
			rendered, err := ctx.EscapeTerm(g)
			if err != nil {
				return "", err
			}
			groupStrs[i] = rendered
		}
		b.WriteString(ctx.sep + "GROUP BY " + strings.Join(groupStrs, ctx.comma))
	}

	if havingStr, err := ctx.compileLogicalTop(s.HavingClause); err != nil {
		return "", err
	} else if havingStr != "" {
		b.WriteString(ctx.sep + "HAVING " + havingStr)
	}

	if err := ctx.writeOrderBy(&b, s.OrderBy); err != nil {
		return "", err
	}
	if err := ctx.writeOffsetLimit(&b, s.OffsetVal, s.LimitVal); err != nil {
		return "", err
	}

	body := b.String()
	if s.Alias() != "" {
		body = "(" + ctx.indentBlock(body) + ")"
	}
	return ctx.withAlias(body, s.Alias()), nil
}

func (ctx *Context) writeOrderBy(b *strings.Builder, orderBy []sqlast.Term) error {
	if len(orderBy) == 0 {
		return nil
	}
	parts := make([]string, len(orderBy))
	for i, o := range orderBy {
		rendered, err := ctx.EscapeTerm(o)
		if err != nil {
			return err
		}
		parts[i] = rendered
	}
	b.WriteString(ctx.sep + "ORDER BY " + strings.Join(parts, ctx.comma))
	return nil
}

func (ctx *Context) writeOffsetLimit(b *strings.Builder, offset, limit sqlast.Term) error {
	var offsetStr, limitStr string
	if !offset.IsAbsent() {
		rendered, err := ctx.EscapeTerm(offset)
		if err != nil {
			return err
		}
		offsetStr = rendered
	}
	if !limit.IsAbsent() {
		rendered, err := ctx.EscapeTerm(limit)
		if err != nil {
			return err
		}
		limitStr = rendered
	}
	if ctx.Features.LimitBeforeOffset {
		if limitStr == "" && offsetStr != "" {
			limitStr = ctx.Features.NoLimitToken
		}
		if limitStr != "" {
			b.WriteString(ctx.sep + "LIMIT " + limitStr)
		}
		if offsetStr != "" {
			b.WriteString(ctx.sep + "OFFSET " + offsetStr)
		}
		return nil
	}
	if offsetStr != "" {
		b.WriteString(ctx.sep + "OFFSET " + offsetStr)
	}
	if limitStr != "" {
		b.WriteString(ctx.sep + "LIMIT " + limitStr)
	}
	return nil
}

func (ctx *Context) compileInsert(i *sqlast.Insert) (string, error) {
	if i.Table.IsAbsent() {
		return "", sqlast.WrapCompileError(sqlast.ErrNoTable, "INSERT has no table")
	}
	tableStr, err := ctx.EscapeTerm(i.Table)
	if err != nil {
		return "", err
	}
	cols := i.Columns()
	colStrs := make([]string, len(cols))
	for idx, c := range cols {
		rendered, err := ctx.EscapeIdentifier(c)
		if err != nil {
			return "", err
		}
		colStrs[idx] = rendered
	}

	rowStrs := make([]string, len(i.Rows))
	for r, row := range i.Rows {
		vals := make([]string, len(cols))
		for idx, col := range cols {
			v, ok := row.Get(col)
			if !ok {
				vals[idx] = "DEFAULT"
				continue
			}
			rendered, err := ctx.escapeColumnValue(v, i.ColumnTypes[col])
			if err != nil {
				return "", err
			}
			vals[idx] = rendered
		}
		rowStrs[r] = "(" + strings.Join(vals, ", ") + ")"
	}

	var b strings.Builder
	b.WriteString("INSERT INTO " + tableStr)
	if len(colStrs) > 0 {
		b.WriteString(" (" + strings.Join(colStrs, ", ") + ")")
	}
	b.WriteString(ctx.sep + "VALUES " + strings.Join(rowStrs, ctx.comma))

	if ctx.Features.Returning && len(i.ReturningFields) > 0 {
		fieldStrs := make([]string, len(i.ReturningFields))
		for idx, f := range i.ReturningFields {
			rendered, err := ctx.EscapeTerm(f)
			if err != nil {
				return "", err
			}
			fieldStrs[idx] = rendered
		}
		b.WriteString(ctx.sep + "RETURNING " + strings.Join(fieldStrs, ctx.comma))
	}

	return ctx.withAlias(b.String(), i.Alias()), nil
}

func (ctx *Context) compileUpdate(u *sqlast.Update) (string, error) {
	if u.Table.IsAbsent() {
		return "", sqlast.WrapCompileError(sqlast.ErrNoTable, "UPDATE has no table")
	}
	if len(u.SetRow) == 0 {
		return "", sqlast.WrapCompileError(sqlast.ErrUpdateRowCount, "UPDATE requires exactly one row of assignments")
	}
	tableStr, err := ctx.EscapeTerm(u.Table)
	if err != nil {
		return "", err
	}
	assigns := make([]string, len(u.SetRow))
	for idx, f := range u.SetRow {
		colStr, err := ctx.EscapeIdentifier(f.Name)
		if err != nil {
			return "", err
		}
		valStr, err := ctx.escapeColumnValue(f.Value, u.ColumnTypes[f.Name])
		if err != nil {
			return "", err
		}
		assigns[idx] = colStr + " = " + valStr
	}

	var b strings.Builder
	b.WriteString("UPDATE " + tableStr)
	b.WriteString(ctx.sep + "SET " + strings.Join(assigns, ctx.comma))

	if whereStr, err := ctx.compileLogicalTop(u.WhereClause); err != nil {
		return "", err
	} else if whereStr != "" {
		b.WriteString(ctx.sep + "WHERE " + whereStr)
	}

	if err := ctx.writeOffsetLimit(&b, u.OffsetVal, u.LimitVal); err != nil {
		return "", err
	}

	if ctx.Features.Returning && len(u.ReturningFields) > 0 {
		fieldStrs := make([]string, len(u.ReturningFields))
		for idx, f := range u.ReturningFields {
			rendered, err := ctx.EscapeTerm(f)
			if err != nil {
				return "", err
			}
			fieldStrs[idx] = rendered
		}
		b.WriteString(ctx.sep + "RETURNING " + strings.Join(fieldStrs, ctx.comma))
	}

	return ctx.withAlias(b.String(), u.Alias()), nil
}

func (ctx *Context) compileDelete(d *sqlast.Delete) (string, error) {
	if d.Table.IsAbsent() {
		return "", sqlast.WrapCompileError(sqlast.ErrNoTable, "DELETE has no table")
	}
	tableStr, err := ctx.EscapeTerm(d.Table)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("DELETE FROM " + tableStr)

	if len(d.UsingTables) > 0 {
		usingStrs := make([]string, len(d.UsingTables))
		for idx, t := range d.UsingTables {
			rendered, err := ctx.EscapeTerm(t)
			if err != nil {
				return "", err
			}
			usingStrs[idx] = rendered
		}
		b.WriteString(ctx.sep + "USING " + strings.Join(usingStrs, ctx.comma))
	}

	if whereStr, err := ctx.compileLogicalTop(d.WhereClause); err != nil {
		return "", err
	} else if whereStr != "" {
		b.WriteString(ctx.sep + "WHERE " + whereStr)
	}

	if err := ctx.writeOffsetLimit(&b, d.OffsetVal, d.LimitVal); err != nil {
		return "", err
	}

	if ctx.Features.Returning && len(d.ReturningFields) > 0 {
		fieldStrs := make([]string, len(d.ReturningFields))
		for idx, f := range d.ReturningFields {
			rendered, err := ctx.EscapeTerm(f)
			if err != nil {
				return "", err
			}
			fieldStrs[idx] = rendered
		}
		b.WriteString(ctx.sep + "RETURNING " + strings.Join(fieldStrs, ctx.comma))
	}

	return ctx.withAlias(b.String(), d.Alias()), nil
}

func (ctx *Context) compileCompound(c *sqlast.CompoundQuery) (string, error) {
	memberStrs := make([]string, len(c.Members))
	for i, m := range c.Members {
		rendered, err := ctx.EscapeTerm(m)
		if err != nil {
			return "", err
		}
		if n, ok := m.Node(); ok {
			switch n.(type) {
			case *sqlast.Select, *sqlast.Insert, *sqlast.Update, *sqlast.Delete:
				// plain Query members are never parenthesized
			default:
				rendered = "(" + rendered + ")"
			}
		}
		memberStrs[i] = rendered
	}

	var b strings.Builder
	b.WriteString(strings.Join(memberStrs, ctx.sep+c.OpString()+ctx.sep))

	if err := ctx.writeOrderBy(&b, c.OrderBy); err != nil {
		return "", err
	}
	if err := ctx.writeOffsetLimit(&b, c.OffsetVal, c.LimitVal); err != nil {
		return "", err
	}

	body := b.String()
	if c.Alias() != "" {
		body = "(" + ctx.indentBlock(body) + ")"
	}
	return ctx.withAlias(body, c.Alias()), nil
}
