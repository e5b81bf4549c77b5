package sqlast

// Select is a SELECT statement: a table (the first FROM argument),
// zero or more joins chained onto it, a projected field list, WHERE,
// GROUP BY, HAVING, ORDER BY, and OFFSET/LIMIT. It also implements Node
// so it can appear as a subquery Term anywhere a child expression is
// expected.
type Select struct {
	base
	Table        Term
	hasTable     bool
	Joins        []Term
	Fields       []Term
	WhereClause  *Logical
	GroupBy      []Term
	HavingClause *Logical
	OrderBy      []Term
	OffsetVal    Term
	LimitVal     Term
}

func (*Select) queryMarker() {}

// SELECT builds a Select statement projecting the given fields. Fields
// may be strings, Nodes, a Row (name -> string/Node/bool aliasing, per
// fieldTerms), or []any; calling SELECT() with no arguments leaves the
// projection empty, which the Context renders as SELECT *.
func SELECT(fields ...any) *Select {
	return &Select{base: base{kind: KindSelect}, Fields: fieldTerms(fields)}
}

// As sets the node's alias and returns the receiver for chaining.
func (s *Select) As(alias string) *Select {
	s.alias = alias
	return s
}

// DISTINCT marks the projection DISTINCT, clearing ALL. Positional
// arguments, if any, are appended to the field list.
func (s *Select) DISTINCT(fields ...any) *Select {
	s.flags |= FlagDistinct
	s.flags &^= FlagAll
	s.Fields = append(s.Fields, fieldTerms(fields)...)
	return s
}

// ALL marks the projection ALL (the default), clearing DISTINCT.
// Positional arguments, if any, are appended to the field list.
func (s *Select) ALL(fields ...any) *Select {
	s.flags |= FlagAll
	s.flags &^= FlagDistinct
	s.Fields = append(s.Fields, fieldTerms(fields)...)
	return s
}

// FIELD appends to the projection list, using the same polymorphic
// argument handling as SELECT's own field list.
func (s *Select) FIELD(fields ...any) *Select {
	s.Fields = append(s.Fields, fieldTerms(fields)...)
	return s
}

// FROM sets the query's table on first call; subsequent calls add an
// implicit CROSS JOIN against the existing table, matching a
// comma-separated FROM list in raw SQL. table may be a string
// identifier, a Node (including another Select for a subquery), or an
// aliased pair via Row.
func (s *Select) FROM(table any) *Select {
	if !s.hasTable {
		s.Table = fromTerm(table)
		s.hasTable = true
		return s
	}
	s.Joins = append(s.Joins, NodeTerm(JOIN(s.joinLeft(), "", fromTerm(table), nil)))
	return s
}

func fromTerm(table any) Term {
	switch v := table.(type) {
	case Row:
		if len(v) != 1 {
			return AnyToTerm(table)
		}
		return aliasedFromEntry(v[0])
	default:
		return identTerm(table)
	}
}

func aliasedFromEntry(f Field) Term {
	if name, ok := f.Value.(string); ok {
		return NodeTerm(COL(name).As(f.Name))
	}
	if n, ok := f.Value.(Node); ok {
		return aliasNode(n, f.Name)
	}
	return NodeTerm(COL(f.Name))
}

// CROSS_JOIN, INNER_JOIN, LEFT_JOIN, RIGHT_JOIN, FULL_JOIN chain a join
// against the table most recently established by FROM or a prior join
// call. condition is nil (CROSS_JOIN), a []string of USING columns, or a
// Node ON expression.
func (s *Select) CROSS_JOIN(table any) *Select {
	s.Joins = append(s.Joins, NodeTerm(CROSS_JOIN(s.joinLeft(), fromTerm(table))))
	return s
}

func (s *Select) INNER_JOIN(table, condition any) *Select {
	s.Joins = append(s.Joins, NodeTerm(INNER_JOIN(s.joinLeft(), fromTerm(table), condition)))
	return s
}

func (s *Select) LEFT_JOIN(table, condition any) *Select {
	s.Joins = append(s.Joins, NodeTerm(LEFT_JOIN(s.joinLeft(), fromTerm(table), condition)))
	return s
}

func (s *Select) RIGHT_JOIN(table, condition any) *Select {
	s.Joins = append(s.Joins, NodeTerm(RIGHT_JOIN(s.joinLeft(), fromTerm(table), condition)))
	return s
}

func (s *Select) FULL_JOIN(table, condition any) *Select {
	s.Joins = append(s.Joins, NodeTerm(FULL_JOIN(s.joinLeft(), fromTerm(table), condition)))
	return s
}

// joinLeft returns the accumulated left side of the next join: the last
// join added, or the base table if none yet.
func (s *Select) joinLeft() any {
	if len(s.Joins) > 0 {
		if n, ok := s.Joins[len(s.Joins)-1].Node(); ok {
			return n
		}
	}
	if n, ok := s.Table.Node(); ok {
		return n
	}
	return s.Table
}

// WHERE / OR_WHERE accumulate filter conditions under AND / OR
// respectively, using the wrap-then-restart rule described on Logical.
func (s *Select) WHERE(args ...any) *Select {
	s.WhereClause = whereAdd(s.WhereClause, "AND", args)
	return s
}

func (s *Select) OR_WHERE(args ...any) *Select {
	s.WhereClause = whereAdd(s.WhereClause, "OR", args)
	return s
}

// GROUP_BY appends grouping expressions.
func (s *Select) GROUP_BY(items ...any) *Select {
	s.GroupBy = append(s.GroupBy, fieldTerms(items)...)
	return s
}

// HAVING / OR_HAVING accumulate post-aggregation filter conditions.
func (s *Select) HAVING(args ...any) *Select {
	s.HavingClause = whereAdd(s.HavingClause, "AND", args)
	return s
}

func (s *Select) OR_HAVING(args ...any) *Select {
	s.HavingClause = whereAdd(s.HavingClause, "OR", args)
	return s
}

// ORDER_BY appends sort keys: either prebuilt Sort nodes, or the
// (col, direction?, nulls?) form where col may be a list of columns.
func (s *Select) ORDER_BY(items ...any) *Select {
	s.OrderBy = orderByAdd(s.OrderBy, items)
	return s
}

// OFFSET sets the OFFSET clause.
func (s *Select) OFFSET(n any) *Select {
	s.OffsetVal = AnyToTerm(n)
	return s
}

// LIMIT sets the LIMIT clause.
func (s *Select) LIMIT(n any) *Select {
	s.LimitVal = AnyToTerm(n)
	return s
}
