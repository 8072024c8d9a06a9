package orm

import "github.com/coderi421/activerecord/internal/errs"

// 将内部的 sentinel error 暴露出去
var (
	// ErrNoUpdatedColumns 代表 UPDATE 语句没有设置任何列
	ErrNoUpdatedColumns = errs.ErrNoUpdatedColumns
	// ErrInsertZeroRow 代表 INSERT 语句没有任何数据
	ErrInsertZeroRow = errs.ErrInsertZeroRow
	// ErrNoInsertColumns 代表 INSERT 语句没有指定列
	ErrNoInsertColumns = errs.ErrNoInsertColumns
)
