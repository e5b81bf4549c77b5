package sqlast

// Update is an UPDATE statement: a target table, exactly one row of
// column/value assignments, WHERE, OFFSET/LIMIT, and an optional
// RETURNING projection.
type Update struct {
	base
	Table           Term
	hasTable        bool
	SetRow          Row
	WhereClause     *Logical
	OffsetVal       Term
	LimitVal        Term
	ReturningFields []Term
	ColumnTypes     map[string]ExplicitType
}

func (*Update) queryMarker() {}

// UPDATE builds an Update statement targeting table with the given
// single assignment row (equivalent to chaining .SET after the fact).
// table may be nil, deferring the target to a later .TABLE call; row
// may be omitted (zero value) when assignments will be set later via
// .SET.
func UPDATE(table any, row ...Row) *Update {
	u := &Update{base: base{kind: KindUpdate}}
	if table != nil {
		u.Table = identTerm(table)
		u.hasTable = true
	}
	if len(row) > 0 {
		if len(row) != 1 {
			panic(WrapCompileError(ErrUpdateRowCount, "UPDATE called with %d rows, want 1", len(row)))
		}
		u.SetRow = row[0]
	}
	return u
}

// As sets the node's alias and returns the receiver for chaining.
func (u *Update) As(alias string) *Update {
	u.alias = alias
	return u
}

// TABLE sets the target table. table-already-set is validated eagerly,
// the same cheap invariant Insert.INTO enforces.
func (u *Update) TABLE(table any) *Update {
	if u.hasTable {
		panic(WrapCompileError(ErrTableAlreadySet, "TABLE called more than once"))
	}
	u.Table = identTerm(table)
	u.hasTable = true
	return u
}

// SET supplies the single row of column/value assignments. Passing
// anything other than exactly one row is a cheap structural mistake
// caught eagerly rather than deferred to compile time.
func (u *Update) SET(rows ...Row) *Update {
	if len(rows) != 1 {
		panic(WrapCompileError(ErrUpdateRowCount, "SET called with %d rows, want 1", len(rows)))
	}
	u.SetRow = rows[0]
	return u
}

// VALUES is an alias for SET kept for symmetry with Insert.VALUES; the
// exactly-one-row rule applies the same way.
func (u *Update) VALUES(rows ...Row) *Update {
	return u.SET(rows...)
}

// WHERE / OR_WHERE accumulate filter conditions under AND / OR.
func (u *Update) WHERE(args ...any) *Update {
	u.WhereClause = whereAdd(u.WhereClause, "AND", args)
	return u
}

func (u *Update) OR_WHERE(args ...any) *Update {
	u.WhereClause = whereAdd(u.WhereClause, "OR", args)
	return u
}

// OFFSET sets the OFFSET clause.
func (u *Update) OFFSET(n any) *Update {
	u.OffsetVal = AnyToTerm(n)
	return u
}

// LIMIT sets the LIMIT clause.
func (u *Update) LIMIT(n any) *Update {
	u.LimitVal = AnyToTerm(n)
	return u
}

// RETURNING sets the RETURNING projection.
func (u *Update) RETURNING(fields ...any) *Update {
	u.ReturningFields = fieldTerms(fields)
	return u
}

// TYPES registers per-column explicit-type hints applied when a plain
// scalar value is escaped for that column. Node values always compile
// through their own method, hint or not.
func (u *Update) TYPES(types map[string]ExplicitType) *Update {
	u.ColumnTypes = types
	return u
}
