package activerecord

import (
	"github.com/coderi421/activerecord/orm"
	"github.com/samber/lo"
)

// 下面的方法只修改正在构造的查询，不会执行任何 I/O
// 设置的部分会一直保留，直到调用 Reset 或者 Load

// Select 返回正在构造的查询，第一次调用的时候创建
func (ar *ActiveRecord) Select() *orm.Selector {
	if ar.selector == nil {
		ar.selector = ar.sql.Select()
	}
	return ar.selector
}

// Reset 丢弃整个查询，下一次 Select 会重新创建
func (ar *ActiveRecord) Reset() *ActiveRecord {
	ar.selector = nil
	return ar
}

// ResetPart 只清空查询中的某一个部分
func (ar *ActiveRecord) ResetPart(part orm.Part) *ActiveRecord {
	ar.Select().Reset(part)
	return ar
}

// Columns 替换查询的列，prefixWithTable 为 true 的时候列名前面加上表名
func (ar *ActiveRecord) Columns(names []string, prefixWithTable bool) *ActiveRecord {
	cols := lo.Map(names, func(n string, _ int) orm.Selectable { return orm.C(n) })
	ar.Select().Columns(cols...).PrefixColumnsWithTable(prefixWithTable)
	return ar
}

// Join 不会校验 on 是否正确，columns 是需要从 table 中额外查询的列
func (ar *ActiveRecord) Join(table string, on orm.Predicate, columns []string, typ orm.JoinType) *ActiveRecord {
	ar.Select().Join(orm.TableOf(table), on, columns, typ)
	return ar
}

// Where 使用 combinator 和之前的条件组合
func (ar *ActiveRecord) Where(p orm.Predicate, combinator orm.Combinator) *ActiveRecord {
	if combinator == orm.CombineOr {
		ar.Select().OrWhere(p)
	} else {
		ar.Select().Where(p)
	}
	return ar
}

func (ar *ActiveRecord) Group(cols ...string) *ActiveRecord {
	ar.Select().GroupBy(lo.Map(cols, func(c string, _ int) orm.Column { return orm.C(c) })...)
	return ar
}

func (ar *ActiveRecord) Having(p orm.Predicate, combinator orm.Combinator) *ActiveRecord {
	if combinator == orm.CombineOr {
		ar.Select().OrHaving(p)
	} else {
		ar.Select().Having(p)
	}
	return ar
}

func (ar *ActiveRecord) Order(orderBys ...orm.OrderBy) *ActiveRecord {
	ar.Select().OrderBy(orderBys...)
	return ar
}

func (ar *ActiveRecord) Limit(limit int) *ActiveRecord {
	ar.Select().Limit(limit)
	return ar
}

func (ar *ActiveRecord) Offset(offset int) *ActiveRecord {
	ar.Select().Offset(offset)
	return ar
}
