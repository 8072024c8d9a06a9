package orm

// Column 代表一个列，table 不为空的时候会带上表名，例如 `users`.`id`
type Column struct {
	table string
	name  string
	alias string
}

func (c Column) expr() {}

func (c Column) selectable() {}

type value struct {
	val any
}

func (v value) expr() {}

// valueOf creates a new value object with the given value.
// It takes in a generic value and returns a value object.
func valueOf(val any) value {
	return value{val: val}
}

// values 用于 IN 查询
type values struct {
	vals []any
}

func (v values) expr() {}

func C(name string) Column {
	return Column{name: name}
}

// As 为列设置别名，只在 SELECT 的列中生效
func (c Column) As(alias string) Column {
	return Column{
		table: c.table,
		name:  c.name,
		alias: alias,
	}
}

func (c Column) binary(o op, arg any) Predicate {
	return Predicate{
		left:  c,
		op:    o,
		right: exprOf(arg), // 如果 arg 不是 Expression 类型 就让他变成这个类型
	}
}

// EQ 例如 C("id").EQ(12)
func (c Column) EQ(arg any) Predicate {
	return c.binary(opEQ, arg)
}

func (c Column) NEQ(arg any) Predicate {
	return c.binary(opNEQ, arg)
}

// LT 例如 C("id").LT(12)
func (c Column) LT(arg any) Predicate {
	return c.binary(opLT, arg)
}

func (c Column) LTEQ(arg any) Predicate {
	return c.binary(opLTEQ, arg)
}

func (c Column) GT(arg any) Predicate {
	return c.binary(opGT, arg)
}

func (c Column) GTEQ(arg any) Predicate {
	return c.binary(opGTEQ, arg)
}

// Like 例如 C("name").Like("A%")
func (c Column) Like(pattern string) Predicate {
	return c.binary(opLike, pattern)
}

// In 例如 C("id").In(1, 2, 3)
// 没有任何值的时候，构造 SQL 会返回错误
func (c Column) In(vals ...any) Predicate {
	return Predicate{
		left:  c,
		op:    opIn,
		right: values{vals: vals},
	}
}

func (c Column) IsNull() Predicate {
	return Predicate{
		left:  c,
		op:    opIs,
		right: Raw("NULL"),
	}
}

func (c Column) NotNull() Predicate {
	return Predicate{
		left:  c,
		op:    opIsNot,
		right: Raw("NULL"),
	}
}

// Add 用于 UPDATE 中的计算，例如 Assign("age", C("age").Add(1))
func (c Column) Add(val any) MathExpr {
	return mathOf(c, opAdd, val)
}

func (c Column) Multi(val any) MathExpr {
	return mathOf(c, opMulti, val)
}
