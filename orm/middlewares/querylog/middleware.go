package querylog

import (
	"context"
	"log"

	"github.com/coderi421/activerecord/orm"
)

type MiddlewareBuilder struct {
	logFunc func(query string, args []any)
}

func NewBuilder() *MiddlewareBuilder {
	return &MiddlewareBuilder{}
}

// LogFunc 这里如果需要配置的参数比较多，可以使用 函数选项模式
func (m *MiddlewareBuilder) LogFunc(fn func(query string, args []any)) *MiddlewareBuilder {
	m.logFunc = fn
	return m
}

func (m *MiddlewareBuilder) Build() orm.Middleware {
	logFunc := m.logFunc
	if logFunc == nil {
		logFunc = func(query string, args []any) {
			log.Printf("sql: %s, args: %v", query, args)
		}
	}
	return func(next orm.Handler) orm.Handler {
		return func(ctx context.Context, qc *orm.QueryContext) *orm.QueryResult {
			if qc.Query != nil {
				logFunc(qc.Query.SQL, qc.Query.Args)
			}
			return next(ctx, qc)
		}
	}
}
