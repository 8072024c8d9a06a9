package activerecord

import (
	"github.com/coderi421/activerecord/internal/errs"
	"github.com/coderi421/activerecord/orm"
)

// ResultSet 把 orm.RowIterator 中的每一行映射成一个新的 Row
// 只能向前遍历一次，想再次遍历需要重新执行查询
type ResultSet struct {
	prototype Prototype
	src       orm.RowIterator

	current Row
	// data 是当前行的原始数据
	data map[string]any
	err  error
}

// NewResultSet prototype 必须实现 Prototype
func NewResultSet(prototype any) (*ResultSet, error) {
	p, ok := prototype.(Prototype)
	if !ok {
		return nil, errs.NewErrUnsupportedPrototype(prototype)
	}
	return &ResultSet{
		prototype: p,
	}, nil
}

// Bind 返回一个新的 ResultSet，原型相同，数据来自 src
func (rs *ResultSet) Bind(src orm.RowIterator) *ResultSet {
	return &ResultSet{
		prototype: rs.prototype,
		src:       src,
	}
}

// Next 每一行都会先 Clone 原型，清空之后再填充
// 不是映射的行（例如 nil）会原样返回
func (rs *ResultSet) Next() bool {
	rs.current, rs.data = nil, nil
	if rs.src == nil || rs.err != nil {
		return false
	}
	if !rs.src.Next() {
		return false
	}

	data := rs.src.Row()
	if data == nil {
		return true
	}

	row := rs.prototype.Clone()
	row.Clear()
	if err := row.Populate(data); err != nil {
		rs.err = err
		_ = rs.src.Close()
		return false
	}
	rs.current, rs.data = row, data
	return true
}

// Current 返回当前行，遍历结束之后返回 nil
func (rs *ResultSet) Current() Row {
	return rs.current
}

func (rs *ResultSet) Err() error {
	if rs.err != nil {
		return rs.err
	}
	if rs.src != nil {
		return rs.src.Err()
	}
	return nil
}

func (rs *ResultSet) Close() error {
	if rs.src == nil {
		return nil
	}
	return rs.src.Close()
}
