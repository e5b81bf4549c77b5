package sqlast

// Delete is a DELETE statement: a target table, an optional USING list
// of additional tables (PostgreSQL/MySQL multi-table delete), WHERE,
// OFFSET/LIMIT, and an optional RETURNING projection.
type Delete struct {
	base
	Table           Term
	hasTable        bool
	UsingTables     []Term
	WhereClause     *Logical
	OffsetVal       Term
	LimitVal        Term
	ReturningFields []Term
}

func (*Delete) queryMarker() {}

// DELETE builds a Delete statement, optionally targeting table
// immediately (equivalent to chaining .FROM/.TABLE after the fact).
// table may be nil or omitted, deferring the target to a later call.
func DELETE(table ...any) *Delete {
	d := &Delete{base: base{kind: KindDelete}}
	if len(table) > 0 && table[0] != nil {
		d.Table = identTerm(table[0])
		d.hasTable = true
	}
	return d
}

// As sets the node's alias and returns the receiver for chaining.
func (d *Delete) As(alias string) *Delete {
	d.alias = alias
	return d
}

// FROM sets the target table.
func (d *Delete) FROM(table any) *Delete {
	if d.hasTable {
		panic(WrapCompileError(ErrTableAlreadySet, "FROM called more than once"))
	}
	d.Table = identTerm(table)
	d.hasTable = true
	return d
}

// TABLE is an alias for FROM, matching UPDATE's naming at call sites
// that treat DELETE and UPDATE symmetrically.
func (d *Delete) TABLE(table any) *Delete {
	return d.FROM(table)
}

// USING appends an additional table to the USING clause.
func (d *Delete) USING(tables ...any) *Delete {
	for _, t := range tables {
		d.UsingTables = append(d.UsingTables, identTerm(t))
	}
	return d
}

// WHERE / OR_WHERE accumulate filter conditions under AND / OR.
func (d *Delete) WHERE(args ...any) *Delete {
	d.WhereClause = whereAdd(d.WhereClause, "AND", args)
	return d
}

func (d *Delete) OR_WHERE(args ...any) *Delete {
	d.WhereClause = whereAdd(d.WhereClause, "OR", args)
	return d
}

// OFFSET sets the OFFSET clause.
func (d *Delete) OFFSET(n any) *Delete {
	d.OffsetVal = AnyToTerm(n)
	return d
}

// LIMIT sets the LIMIT clause.
func (d *Delete) LIMIT(n any) *Delete {
	d.LimitVal = AnyToTerm(n)
	return d
}

// RETURNING sets the RETURNING projection.
func (d *Delete) RETURNING(fields ...any) *Delete {
	d.ReturningFields = fieldTerms(fields)
	return d
}
