package orm

// RawExpr 原样写进 SQL 的片段，args 按顺序追加到参数里面
// 可以直接作为 SELECT 的列，也可以通过 AsPredicate 作为条件
// IsNull 和 NotNull 右边的 NULL 也是一个 RawExpr
type RawExpr struct {
	raw  string
	args []any
}

func Raw(expr string, args ...any) RawExpr {
	return RawExpr{
		raw:  expr,
		args: args,
	}
}

func (r RawExpr) selectable() {}

func (r RawExpr) expr() {}

// AsPredicate 只有左边的 Predicate，和其它条件组合的时候会加上括号
// 例如 Raw("`age` > ?", 18).AsPredicate().And(C("id").EQ(1))
func (r RawExpr) AsPredicate() Predicate {
	return Predicate{
		left: r,
	}
}

// MathExpr 列上的算术运算，主要用在 UPDATE 里面
// 例如 Assign("age", C("age").Add(1)) -> `age`=`age` + ?
type MathExpr struct {
	left  Expression
	op    op
	right Expression
}

// mathOf val 可以是另外一列，例如 C("price").Multi(C("count"))
func mathOf(left Expression, o op, val any) MathExpr {
	return MathExpr{
		left:  left,
		op:    o,
		right: exprOf(val),
	}
}

func (m MathExpr) expr() {}

func (m MathExpr) Add(val any) MathExpr {
	return mathOf(m, opAdd, val)
}

func (m MathExpr) Multi(val any) MathExpr {
	return mathOf(m, opMulti, val)
}
