package orm

import (
	"github.com/coderi421/activerecord/internal/errs"
)

// Part 代表 SELECT 语句中可以单独重置的部分
type Part string

const (
	PartColumns Part = "columns"
	PartJoins   Part = "joins"
	PartWhere   Part = "where"
	PartGroup   Part = "group"
	PartHaving  Part = "having"
	PartOrder   Part = "order"
	PartLimit   Part = "limit"
	PartOffset  Part = "offset"
)

// Selector represents a query selector that allows building SQL SELECT statements.
// It holds the necessary information to construct the query.
// 每个部分都是独立的字段，Reset 只会清空其中一个
type Selector struct {
	table   string // table is the name of the table to select from.
	dialect Dialect

	columns       []Selectable
	prefixColumns bool // 是否在列名前面加上表名
	joins         []join
	where         []condition // where holds the WHERE predicates for the query.
	groupBy       []Column
	having        []condition
	orderBy       []OrderBy
	offset        int
	limit         int

	// err 记录构造过程中的错误，在 Build 的时候返回
	err error
}

// NewSelector creates a new instance of Selector.
func NewSelector(table string, d Dialect) *Selector {
	return &Selector{
		table:         table,
		dialect:       d,
		prefixColumns: true,
	}
}

// Table 返回 FROM 的表名
func (s *Selector) Table() string {
	return s.table
}

// Columns 检索指定 column，会替换掉之前设置的列
func (s *Selector) Columns(cols ...Selectable) *Selector {
	s.columns = cols
	return s
}

// PrefixColumnsWithTable 为 true 的时候，没有指定表的列会加上 FROM 的表名
func (s *Selector) PrefixColumnsWithTable(prefix bool) *Selector {
	s.prefixColumns = prefix
	return s
}

// Join 增加一个 JOIN 子句，不会校验 on 条件是否正确
func (s *Selector) Join(t Table, on Predicate, cols []string, typ JoinType) *Selector {
	if typ == "" {
		typ = JoinInner
	}
	s.joins = append(s.joins, join{
		table:   t,
		on:      on,
		columns: cols,
		typ:     typ,
	})
	return s
}

// Where 用于构造 WHERE 查询条件。如果 ps 长度为 0，那么不会构造 WHERE 部分
// 多次调用的时候，使用 AND 和之前的条件组合
func (s *Selector) Where(ps ...Predicate) *Selector {
	s.where = appendConditions(s.where, CombineAnd, ps...)
	return s
}

// OrWhere 使用 OR 和之前的条件组合
func (s *Selector) OrWhere(ps ...Predicate) *Selector {
	s.where = appendConditions(s.where, CombineOr, ps...)
	return s
}

func (s *Selector) GroupBy(cols ...Column) *Selector {
	s.groupBy = append(s.groupBy, cols...)
	return s
}

func (s *Selector) Having(ps ...Predicate) *Selector {
	s.having = appendConditions(s.having, CombineAnd, ps...)
	return s
}

func (s *Selector) OrHaving(ps ...Predicate) *Selector {
	s.having = appendConditions(s.having, CombineOr, ps...)
	return s
}

func (s *Selector) OrderBy(orderBys ...OrderBy) *Selector {
	s.orderBy = append(s.orderBy, orderBys...)
	return s
}

func (s *Selector) Offset(offset int) *Selector {
	s.offset = offset
	return s
}

func (s *Selector) Limit(limit int) *Selector {
	s.limit = limit
	return s
}

// Reset 清空某一个部分，其余部分保持不变
func (s *Selector) Reset(part Part) *Selector {
	switch part {
	case PartColumns:
		s.columns = nil
		s.prefixColumns = true
	case PartJoins:
		s.joins = nil
	case PartWhere:
		s.where = nil
	case PartGroup:
		s.groupBy = nil
	case PartHaving:
		s.having = nil
	case PartOrder:
		s.orderBy = nil
	case PartLimit:
		s.limit = 0
	case PartOffset:
		s.offset = 0
	default:
		s.err = errs.NewErrUnknownPart(string(part))
	}
	return s
}

// Build generates a SQL query for selecting columns from the table.
// It returns the generated query as a *Query struct or an error if there was any.
func (s *Selector) Build() (*Query, error) {
	if s.err != nil {
		return nil, s.err
	}

	b := newBuilder(s.dialect)
	b.sb.WriteString("SELECT ")
	if err := s.buildColumns(b); err != nil {
		return nil, err
	}
	b.sb.WriteString(" FROM ")
	b.quote(s.table)

	for _, j := range s.joins {
		if err := s.buildJoin(b, j); err != nil {
			return nil, err
		}
	}

	// construct where
	if len(s.where) > 0 {
		// 类似这种可有可无的部分，都要在前面加一个空格
		b.sb.WriteString(" WHERE ")
		if err := b.buildPredicates(s.where); err != nil {
			return nil, err
		}
	}

	// 分组
	if len(s.groupBy) > 0 {
		b.sb.WriteString(" GROUP BY ")
		for i, c := range s.groupBy {
			if i > 0 {
				b.sb.WriteByte(',')
			}
			b.buildColumn(c.table, c.name)
		}
	}

	// 筛选
	if len(s.having) > 0 {
		b.sb.WriteString(" HAVING ")
		if err := b.buildPredicates(s.having); err != nil {
			return nil, err
		}
	}

	// 排序
	if len(s.orderBy) > 0 {
		b.sb.WriteString(" ORDER BY ")
		for i, ob := range s.orderBy {
			if i > 0 {
				b.sb.WriteByte(',')
			}
			b.buildColumn(ob.col.table, ob.col.name)
			b.sb.WriteByte(' ')
			b.sb.WriteString(ob.order)
		}
	}

	// 分页
	if s.limit > 0 {
		b.sb.WriteString(" LIMIT ?")
		// 将 数值 作为参数追加进去
		b.addArgs(s.limit)
	}

	// 偏移量
	if s.offset > 0 {
		b.sb.WriteString(" OFFSET ?")
		b.addArgs(s.offset)
	}

	b.sb.WriteByte(';')
	return b.query(), nil
}

func (s *Selector) buildColumns(b *builder) error {
	joinCols := 0
	for _, j := range s.joins {
		joinCols += len(j.columns)
	}

	if len(s.columns) == 0 {
		if joinCols == 0 {
			b.sb.WriteByte('*')
			return nil
		}
		// 有 JOIN 的列的时候，主表需要明确写出 `table`.*
		b.quote(s.table)
		b.sb.WriteString(".*")
	}

	for i, c := range s.columns {
		if i > 0 {
			b.sb.WriteByte(',')
		}

		switch val := c.(type) {
		case Column:
			if val.table == "" && s.prefixColumns {
				val.table = s.table
			}
			b.buildColumn(val.table, val.name)
			b.buildAs(val.alias)
		case Aggregate:
			b.buildAggregate(val)
			b.buildAs(val.alias)
		case RawExpr:
			b.sb.WriteString(val.raw)
			if len(val.args) != 0 {
				b.addArgs(val.args...)
			}
		default:
			return errs.NewErrUnsupportedSelectable(c)
		}
	}

	for _, j := range s.joins {
		for _, col := range j.columns {
			b.sb.WriteByte(',')
			b.buildColumn(j.table.ref(), col)
		}
	}
	return nil
}

func (s *Selector) buildJoin(b *builder, j join) error {
	b.sb.WriteByte(' ')
	b.sb.WriteString(string(j.typ))
	b.sb.WriteString(" JOIN ")
	b.quote(j.table.name)
	b.buildAs(j.table.alias)
	if j.on.isZero() {
		return nil
	}
	b.sb.WriteString(" ON ")
	return b.buildExpression(j.on)
}

// Selectable 暂时没什么作用只是用作标记，可检索指定字段的标记
// 让结构体实现这个接口，就可以传入
// 使用接口为的是：让 聚合函数， columns， 以及 RawExpr（原生sql） 都能作为参数传入统一个函数，做统一处理
type Selectable interface {
	selectable()
}

type OrderBy struct {
	col   Column
	order string
}

func Asc(col string) OrderBy {
	return OrderBy{
		col:   C(col),
		order: "ASC",
	}
}

func Desc(col string) OrderBy {
	return OrderBy{
		col:   C(col),
		order: "DESC",
	}
}

// Order 可以指定带表名的列，例如 Order(TableOf("users").C("id"), "DESC")
func Order(col Column, order string) OrderBy {
	return OrderBy{
		col:   col,
		order: order,
	}
}
