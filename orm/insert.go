package orm

import (
	"github.com/coderi421/activerecord/internal/errs"
)

type Inserter struct {
	table   string
	dialect Dialect
	columns []string // 要插入哪些列
	values  [][]any  // 缓存要插入的数据，每一个元素是一行
}

func NewInserter(table string, d Dialect) *Inserter {
	return &Inserter{
		table:   table,
		dialect: d,
	}
}

// Columns
//
//	@Description: 指定插入的字段
//	@receiver i
//	@param cols
//	@return *Inserter
func (i *Inserter) Columns(cols ...string) *Inserter {
	i.columns = cols
	return i
}

// Values
//
//	@Description: 追加一行数据，顺序和 Columns 一致
//	@receiver i
//	@param vals
//	@return *Inserter
func (i *Inserter) Values(vals ...any) *Inserter {
	i.values = append(i.values, vals)
	return i
}

func (i *Inserter) Build() (*Query, error) {
	if len(i.columns) == 0 {
		return nil, errs.ErrNoInsertColumns
	}
	if len(i.values) == 0 {
		return nil, errs.ErrInsertZeroRow
	}

	b := newBuilder(i.dialect)
	b.sb.WriteString("INSERT INTO ")
	b.quote(i.table)
	b.sb.WriteString(" (")
	for idx, c := range i.columns {
		if idx > 0 {
			b.sb.WriteByte(',')
		}
		b.quote(c)
	}

	b.args = make([]any, 0, len(i.columns)*len(i.values))
	b.sb.WriteString(") VALUES ")
	for vIdx, row := range i.values {
		// 构建 VALUES (?,?,?), (?,?,?)
		if len(row) != len(i.columns) {
			return nil, errs.NewErrInsertValueCount(len(i.columns), len(row))
		}
		if vIdx > 0 {
			b.sb.WriteByte(',')
		}
		b.sb.WriteByte('(')
		for fIdx, val := range row {
			if fIdx > 0 {
				b.sb.WriteByte(',')
			}
			b.sb.WriteByte('?')
			b.addArgs(val)
		}
		b.sb.WriteByte(')')
	}

	b.sb.WriteByte(';')
	return b.query(), nil
}
