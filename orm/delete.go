package orm

type Deleter struct {
	table   string
	dialect Dialect
	where   []condition
}

// NewDeleter creates a new instance of Deleter.
func NewDeleter(table string, d Dialect) *Deleter {
	return &Deleter{
		table:   table,
		dialect: d,
	}
}

// Build generates a DELETE query based on the provided parameters.
// It returns the generated query string and any associated arguments,
// or an error if there was a problem building the query.
func (d *Deleter) Build() (*Query, error) {
	b := newBuilder(d.dialect)
	_, _ = b.sb.WriteString("DELETE FROM ")
	b.quote(d.table)

	// If there are any WHERE clauses, add them to the query.
	if len(d.where) > 0 {
		b.sb.WriteString(" WHERE ")
		if err := b.buildPredicates(d.where); err != nil {
			return nil, err
		}
	}

	b.sb.WriteByte(';')
	return b.query(), nil
}

// Where accepts predicates and adds them to the Deleter's where clause.
//
// Parameters:
// predicates: A list of predicates to add to the where clause.
//
// Returns:
// *Deleter: The Deleter object with the updated where clause.
func (d *Deleter) Where(predicates ...Predicate) *Deleter {
	d.where = appendConditions(d.where, CombineAnd, predicates...)
	return d
}
