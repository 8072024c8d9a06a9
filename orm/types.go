package orm

import (
	"context"
)

// Query 构造好的 SQL 和参数
type Query struct {
	SQL  string
	Args []any
}

type QueryBuilder interface {
	Build() (*Query, error)
}

// RowIterator 是 Executor 返回的原始结果集
// 每一行都是 列名 -> 值 的映射
type RowIterator interface {
	// Next 移动到下一行，没有数据或者出错的时候返回 false
	Next() bool
	// Row 返回当前行
	Row() map[string]any
	Err() error
	Close() error
}

// Statement 已经准备好，可以直接执行的语句
type Statement interface {
	// Query 用于 SELECT
	Query(ctx context.Context) (RowIterator, error)
	// Exec 用于 UPDATE, DELETE 和 INSERT
	Exec(ctx context.Context) Result
}
