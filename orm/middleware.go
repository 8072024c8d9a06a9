package orm

import (
	"context"
)

// QueryContext 中间件的上下文
// Query 是已经构造好的 SQL，中间件可以直接使用；Builder 保留了原始的查询，方便需要的中间件做类型断言
type QueryContext struct {
	// Type 声明查询类型。即 SELECT, UPDATE, DELETE, INSERT 和 RAW
	Type string
	// Table 查询针对的表
	Table string

	Builder QueryBuilder
	Query   *Query
}

type QueryResult struct {
	// Result 在不同的查询里面，类型是不同的
	// SELECT 和 RAW 里面这会是 *sql.Rows
	// 其它情况下，它会是 sql.Result
	Result any
	Err    error
}

type Middleware func(next Handler) Handler

type Handler func(ctx context.Context, qc *QueryContext) *QueryResult
