package orm

import (
	"strings"

	"github.com/coderi421/activerecord/internal/errs"
)

// builder 是 select delete update insert 共用的拼接 sql 的部分
// 每次 Build 都使用一个新的 builder，所以同一个 QueryBuilder 可以重复 Build
type builder struct {
	sb     strings.Builder // sb is used to build the SQL query string.
	args   []any           // args holds the arguments for the query.
	quoter byte
}

func newBuilder(d Dialect) *builder {
	return &builder{
		quoter: d.quoter(),
	}
}

func (b *builder) quote(name string) {
	b.sb.WriteByte(b.quoter)
	b.sb.WriteString(name)
	b.sb.WriteByte(b.quoter)
}

// buildColumn 有表名的时候拼接成 `table`.`column`
func (b *builder) buildColumn(table, name string) {
	if table != "" {
		b.quote(table)
		b.sb.WriteByte('.')
	}
	b.quote(name)
}

func (b *builder) buildAs(alias string) {
	if alias != "" {
		b.sb.WriteString(" AS ")
		b.quote(alias)
	}
}

// buildPredicates 按照调用顺序，从左往右组合条件
// ((p1 AND p2) OR p3)
func (b *builder) buildPredicates(cs []condition) error {
	// Take the first predicate as the starting node.
	p := cs[0].p

	for i := 1; i < len(cs); i++ {
		if cs[i].comb == CombineOr {
			p = p.Or(cs[i].p)
			continue
		}
		p = p.And(cs[i].p)
	}

	// Recursively process the where statement.
	return b.buildExpression(p)
}

// buildExpression builds the SQL query for the given expression.
// It takes an expression as input and recursively constructs the SQL query.
// The SQL query is stored in the builder's string buffer (b.sb).
// The argument values are stored in the builder's argument list (b.args).
func (b *builder) buildExpression(e Expression) error {
	// Column 代表是列名，直接拼接列名
	// value 代表参数，加入参数列表
	// Predicate 代表一个查询条件：
	// 如果左边是一个 Predicate，那么加上括号
	// 递归构造左边
	// 构造操作符
	// 如果右边是一个 Predicate，那么加上括号
	if e == nil {
		return nil
	}

	switch expr := e.(type) {
	case Column:
		b.buildColumn(expr.table, expr.name)
	case Aggregate:
		b.buildAggregate(expr)
	case value:
		// Append placeholder to the SQL query and add value to the argument list
		b.sb.WriteByte('?')
		b.addArgs(expr.val)
	case values:
		if len(expr.vals) == 0 {
			return errs.NewErrEmptyInValues("")
		}
		b.sb.WriteByte('(')
		for i, v := range expr.vals {
			if i > 0 {
				b.sb.WriteByte(',')
			}
			b.sb.WriteByte('?')
			b.addArgs(v)
		}
		b.sb.WriteByte(')')
	case RawExpr:
		// 执行原生 sql 语句
		b.sb.WriteString(expr.raw)
		if len(expr.args) != 0 {
			b.addArgs(expr.args...)
		}
	case MathExpr:
		return b.buildBinary(expr.left, expr.op, expr.right)
	case Predicate:
		if expr.op == "" {
			// 如果只有左边（op 符号为空，就不需要连接），例如执行原生 sql raw 的时候，就只有左边
			return b.buildSubExpression(expr.left)
		}
		return b.buildBinary(expr.left, expr.op, expr.right)
	default:
		return errs.NewErrUnsupportedExpressionType(expr)
	}

	return nil
}

func (b *builder) buildBinary(left Expression, o op, right Expression) error {
	// 如果左边有复杂结构，则在最外边套一层括号
	if left != nil {
		if err := b.buildSubExpression(left); err != nil {
			return err
		}
		b.sb.WriteByte(' ')
	}

	//处理运算符号
	b.sb.WriteString(o.String())
	b.sb.WriteByte(' ')

	// IN 需要知道是哪一列
	if vs, ok := right.(values); ok && len(vs.vals) == 0 {
		if c, isCol := left.(Column); isCol {
			return errs.NewErrEmptyInValues(c.name)
		}
	}
	return b.buildSubExpression(right)
}

func (b *builder) buildSubExpression(e Expression) error {
	switch e.(type) {
	case Predicate, MathExpr:
		b.sb.WriteByte('(')
		if err := b.buildExpression(e); err != nil {
			return err
		}
		b.sb.WriteByte(')')
		return nil
	default:
		return b.buildExpression(e)
	}
}

func (b *builder) buildAggregate(a Aggregate) {
	b.sb.WriteString(a.fn)
	b.sb.WriteByte('(')
	b.buildColumn(a.table, a.arg)
	b.sb.WriteByte(')')
}

func (b *builder) buildAssignment(a Assignment) error {
	b.quote(a.column)
	b.sb.WriteByte('=')
	return b.buildExpression(a.val)
}

func (b *builder) addArgs(args ...any) {
	if b.args == nil {
		b.args = make([]any, 0, 8)
	}
	b.args = append(b.args, args...)
}

func (b *builder) query() *Query {
	return &Query{
		SQL:  b.sb.String(),
		Args: b.args,
	}
}
