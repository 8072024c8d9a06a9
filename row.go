package activerecord

import (
	"reflect"

	"github.com/coderi421/activerecord/internal/errs"
)

// Row 可以被清空，并且可以用 列名 -> 值 的映射重新填充
type Row interface {
	Clear()
	Populate(data map[string]any) error
}

// Prototype 结果集中每一行都会 Clone 一次原型，再进行填充
// Clone 返回的实例不能和原型共享任何可变的状态
type Prototype interface {
	Row
	Clone() Row
}

// Collect 取出结果集中剩下的所有数据，并且关闭结果集
func Collect[T Row](rs *ResultSet) ([]T, error) {
	defer func() { _ = rs.Close() }()

	var res []T
	for rs.Next() {
		t, ok := rs.Current().(T)
		if !ok {
			return nil, errs.NewErrUnexpectedRowType(reflect.TypeOf((*T)(nil)).Elem().String(), rs.Current())
		}
		res = append(res, t)
	}
	return res, rs.Err()
}
