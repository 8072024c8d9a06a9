package orm

import (
	"github.com/coderi421/activerecord/internal/errs"
)

type Updater struct {
	table   string
	dialect Dialect
	assigns []Assignable // 由于处理 name=zheng
	where   []condition
}

func NewUpdater(table string, d Dialect) *Updater {
	return &Updater{
		table:   table,
		dialect: d,
	}
}

// Set 会追加赋值语句
func (u *Updater) Set(assigns ...Assignable) *Updater {
	u.assigns = append(u.assigns, assigns...)
	return u
}

// Where 没有条件的时候，更新全表
func (u *Updater) Where(ps ...Predicate) *Updater {
	u.where = appendConditions(u.where, CombineAnd, ps...)
	return u
}

func (u *Updater) Build() (*Query, error) {
	if len(u.assigns) == 0 {
		return nil, errs.ErrNoUpdatedColumns
	}

	b := newBuilder(u.dialect)
	b.sb.WriteString("UPDATE ")
	b.quote(u.table)
	b.sb.WriteString(" SET ")
	for i, a := range u.assigns {
		if i > 0 {
			b.sb.WriteByte(',')
		}
		switch assign := a.(type) {
		case Assignment:
			if err := b.buildAssignment(assign); err != nil {
				return nil, err
			}
		default:
			return nil, errs.NewErrUnsupportedAssignableType(a)
		}
	}
	if len(u.where) > 0 {
		b.sb.WriteString(" WHERE ")
		if err := b.buildPredicates(u.where); err != nil {
			return nil, err
		}
	}
	b.sb.WriteByte(';')
	return b.query(), nil
}
