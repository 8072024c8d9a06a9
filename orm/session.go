package orm

import (
	"context"
	"database/sql"
)

var _ Session = &DB{}

// Session 代表一个抽象的概念，即会话
// 方法是私有的，只有本包里面的 DB 可以实现
type Session interface {
	getCore() core
	queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	execContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
