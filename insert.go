package sqlast

// Insert is an INSERT statement: a target table, one or more rows of
// column/value pairs (multiple rows produce a single multi-row VALUES
// list, and the column set is the first-insertion-order union across
// all rows), and an optional RETURNING projection.
type Insert struct {
	base
	Table           Term
	hasTable        bool
	Rows            []Row
	ReturningFields []Term
	ColumnTypes     map[string]ExplicitType
}

func (*Insert) queryMarker() {}

// INSERT builds an Insert statement targeting table, optionally seeded
// with one or more rows (equivalent to chaining .VALUES after the
// fact). table may be nil, deferring the target to a later .INTO call.
func INSERT(table any, rows ...Row) *Insert {
	i := &Insert{base: base{kind: KindInsert}}
	if table != nil {
		i.Table = identTerm(table)
		i.hasTable = true
	}
	i.Rows = append(i.Rows, rows...)
	return i
}

// As sets the node's alias and returns the receiver for chaining.
func (i *Insert) As(alias string) *Insert {
	i.alias = alias
	return i
}

// INTO sets the target table. table-already-set is a cheap, eagerly
// validated invariant: calling INTO twice panics rather than deferring
// to compile time.
func (i *Insert) INTO(table any) *Insert {
	if i.hasTable {
		panic(WrapCompileError(ErrTableAlreadySet, "INTO called more than once"))
	}
	i.Table = identTerm(table)
	i.hasTable = true
	return i
}

// VALUES appends one or more rows to insert. Each row is a Row of
// column/value pairs built with R(...); the column union across all
// rows (in first-insertion order) becomes the statement's column list,
// and a row missing a column present in another gets DEFAULT in that
// position.
func (i *Insert) VALUES(rows ...Row) *Insert {
	i.Rows = append(i.Rows, rows...)
	return i
}

// RETURNING sets the RETURNING projection. It is emitted only on
// dialects whose Features.Returning is set (PostgreSQL, SQLite); MySQL
// drops it. A call with no fields emits no RETURNING clause.
func (i *Insert) RETURNING(fields ...any) *Insert {
	i.ReturningFields = fieldTerms(fields)
	return i
}

// TYPES registers per-column explicit-type hints applied when a plain
// scalar value is escaped for that column. Node values always compile
// through their own method, hint or not.
func (i *Insert) TYPES(types map[string]ExplicitType) *Insert {
	i.ColumnTypes = types
	return i
}

// Columns computes the first-insertion-order union of column names
// across all rows.
func (i *Insert) Columns() []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range i.Rows {
		for _, f := range row {
			if !seen[f.Name] {
				seen[f.Name] = true
				cols = append(cols, f.Name)
			}
		}
	}
	return cols
}
