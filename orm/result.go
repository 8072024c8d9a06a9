package orm

import (
	"database/sql"

	"github.com/coderi421/activerecord/internal/errs"
)

type Result struct {
	err error
	res sql.Result
}

// NewResult 将 sql.Result 和执行过程中的 error 包装在一起
func NewResult(res sql.Result, err error) Result {
	return Result{
		err: err,
		res: res,
	}
}

// LastInsertId 重新 database sql 的 Result 方法 做一层拦截
func (r Result) LastInsertId() (int64, error) {
	if err := r.Err(); err != nil {
		return 0, err
	}
	return r.res.LastInsertId()
}

func (r Result) RowsAffected() (int64, error) {
	if err := r.Err(); err != nil {
		return 0, err
	}
	return r.res.RowsAffected()
}

// Err 零值的 Result 没有任何结果，也当作错误处理
func (r Result) Err() error {
	if r.err == nil && r.res == nil {
		return errs.NewErrUnexpectedQueryResult(nil)
	}
	return r.err
}
