package orm

// RawQuerier 原生 SQL，Build 的时候原样返回
type RawQuerier struct {
	sql  string
	args []any
}

// RawQuery 创建一个 RawQuerier 实例
func RawQuery(query string, args ...any) *RawQuerier {
	return &RawQuerier{
		sql:  query,
		args: args,
	}
}

func (r *RawQuerier) Build() (*Query, error) {
	return &Query{
		SQL:  r.sql,
		Args: r.args,
	}, nil
}
