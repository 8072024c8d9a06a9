package orm

import "context"

type core struct {
	dialect Dialect
	mdls    []Middleware
}

// run 把中间件串起来，最后调用 h
func run(ctx context.Context, c core, qc *QueryContext, h Handler) *QueryResult {
	for j := len(c.mdls) - 1; j >= 0; j-- {
		h = c.mdls[j](h)
	}
	return h(ctx, qc)
}
