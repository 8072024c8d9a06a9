package orm

import (
	"database/sql"
)

var _ RowIterator = &Rows{}

// Rows 将 *sql.Rows 的每一行转成 列名 -> 值 的映射
// 遍历结束或者出错的时候会自动关闭 *sql.Rows
type Rows struct {
	rows    *sql.Rows
	columns []string
	current map[string]any
	err     error
	closed  bool
}

func NewRows(rows *sql.Rows) *Rows {
	return &Rows{
		rows: rows,
	}
}

func (r *Rows) Next() bool {
	r.current = nil
	if r.closed {
		return false
	}
	if !r.rows.Next() {
		r.err = r.rows.Err()
		r.finish()
		return false
	}

	if r.columns == nil {
		cols, err := r.rows.Columns()
		if err != nil {
			r.err = err
			r.finish()
			return false
		}
		r.columns = cols
	}

	// colValues 里面存的都是指针，scan 之后从指针里面取值
	colValues := make([]any, len(r.columns))
	for i := range colValues {
		colValues[i] = new(any)
	}
	if err := r.rows.Scan(colValues...); err != nil {
		r.err = err
		r.finish()
		return false
	}

	row := make(map[string]any, len(r.columns))
	for i, c := range r.columns {
		val := *(colValues[i].(*any))
		// 有的驱动例如 mysql 会把字符串返回成 []byte
		if bs, ok := val.([]byte); ok {
			val = string(bs)
		}
		row[c] = val
	}
	r.current = row
	return true
}

func (r *Rows) Row() map[string]any {
	return r.current
}

func (r *Rows) Err() error {
	return r.err
}

func (r *Rows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.rows.Close()
}

// finish 关闭 rows，如果之前没有错误，那么记录关闭的错误
func (r *Rows) finish() {
	if err := r.Close(); err != nil && r.err == nil {
		r.err = err
	}
}
