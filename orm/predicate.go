package orm

type op string

const (
	opEQ    = "="
	opNEQ   = "<>"
	opLT    = "<"
	opLTEQ  = "<="
	opGT    = ">"
	opGTEQ  = ">="
	opLike  = "LIKE"
	opIn    = "IN"
	opIs    = "IS"
	opIsNot = "IS NOT"
	opAND   = "AND"
	opOR    = "OR"
	opNOT   = "NOT"
	opAdd   = "+"
	opMulti = "*"
)

func (o op) String() string {
	return string(o)
}

// Combinator 决定多次调用 Where 或者 Having 的时候，新的条件和已有的条件如何组合
type Combinator string

const (
	CombineAnd Combinator = opAND
	CombineOr  Combinator = opOR
)

// Expression 代表语句，或者语句的部分
// 暂时没想好怎么设计方法，所以直接做成标记接口
type Expression interface {
	expr()
}

// exprOf returns an Expression based on the input parameter.
func exprOf(e any) Expression {
	switch expr := e.(type) {
	// If the input parameter is already an Expression, return it as is.
	case Expression:
		return expr
	// If the input parameter is not an Expression, convert it to an Expression using the valueOf function.
	default:
		return valueOf(expr)
	}
}

// Predicate 代表一个查询条件
// Predicate 可以通过和 Predicate 组合构成复杂的查询条件
type Predicate struct {
	left  Expression
	op    op
	right Expression
}

func (Predicate) expr() {}

// isZero 零值的 Predicate 不会产生任何条件
func (p Predicate) isZero() bool {
	return p.left == nil && p.op == "" && p.right == nil
}

func Not(p Predicate) Predicate {
	return Predicate{
		op:    opNOT,
		right: p,
	}
}

func (p Predicate) And(r Predicate) Predicate {
	return Predicate{
		left:  p,
		op:    opAND,
		right: r,
	}
}

func (p Predicate) Or(r Predicate) Predicate {
	return Predicate{
		left:  p,
		op:    opOR,
		right: r,
	}
}

// condition 记录下条件本身，以及它和前面条件的组合方式
type condition struct {
	p    Predicate
	comb Combinator
}

// appendConditions 跳过零值的 Predicate
func appendConditions(cs []condition, comb Combinator, ps ...Predicate) []condition {
	for _, p := range ps {
		if p.isZero() {
			continue
		}
		cs = append(cs, condition{p: p, comb: comb})
	}
	return cs
}
