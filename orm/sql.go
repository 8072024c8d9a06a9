package orm

import (
	"context"
	"database/sql"

	"github.com/coderi421/activerecord/internal/errs"
)

// SQL 绑定了一张表和一个 Session
// 负责创建各种 QueryBuilder，以及把它们变成可以执行的 Statement
type SQL struct {
	core
	sess  Session
	table string
}

func NewSQL(sess Session, table string) *SQL {
	return &SQL{
		core:  sess.getCore(),
		sess:  sess,
		table: table,
	}
}

func (s *SQL) Table() string {
	return s.table
}

func (s *SQL) Select() *Selector {
	return NewSelector(s.table, s.dialect)
}

func (s *SQL) Update() *Updater {
	return NewUpdater(s.table, s.dialect)
}

func (s *SQL) Delete() *Deleter {
	return NewDeleter(s.table, s.dialect)
}

func (s *SQL) Insert() *Inserter {
	return NewInserter(s.table, s.dialect)
}

// Prepare 构造 SQL，构造失败的时候直接返回错误
func (s *SQL) Prepare(q QueryBuilder) (Statement, error) {
	query, err := q.Build()
	if err != nil {
		return nil, err
	}
	return &statement{
		core: s.core,
		sess: s.sess,
		qc: &QueryContext{
			Type:    typeOf(q),
			Table:   s.table,
			Builder: q,
			Query:   query,
		},
	}, nil
}

func typeOf(q QueryBuilder) string {
	switch q.(type) {
	case *Selector:
		return "SELECT"
	case *Updater:
		return "UPDATE"
	case *Deleter:
		return "DELETE"
	case *Inserter:
		return "INSERT"
	default:
		return "RAW"
	}
}

type statement struct {
	core
	sess Session
	qc   *QueryContext
}

func (st *statement) Query(ctx context.Context) (RowIterator, error) {
	res := run(ctx, st.core, st.qc, func(ctx context.Context, qc *QueryContext) *QueryResult {
		rows, err := st.sess.queryContext(ctx, qc.Query.SQL, qc.Query.Args...)
		if err != nil {
			return &QueryResult{Err: err}
		}
		return &QueryResult{Result: rows}
	})
	if res.Err != nil {
		if rows, ok := res.Result.(*sql.Rows); ok {
			_ = rows.Close()
		}
		return nil, res.Err
	}
	rows, ok := res.Result.(*sql.Rows)
	if !ok {
		return nil, errs.NewErrUnexpectedQueryResult(res.Result)
	}
	return NewRows(rows), nil
}

func (st *statement) Exec(ctx context.Context) Result {
	res := run(ctx, st.core, st.qc, func(ctx context.Context, qc *QueryContext) *QueryResult {
		r, err := st.sess.execContext(ctx, qc.Query.SQL, qc.Query.Args...)
		return &QueryResult{Result: r, Err: err}
	})
	// 中间件可能直接返回一个空的 QueryResult
	if res.Err == nil && res.Result == nil {
		return Result{err: errs.NewErrUnexpectedQueryResult(nil)}
	}
	var sqlRes sql.Result
	if res.Result != nil {
		r, ok := res.Result.(sql.Result)
		if !ok {
			return Result{err: errs.NewErrUnexpectedQueryResult(res.Result)}
		}
		sqlRes = r
	}
	return Result{
		err: res.Err,
		res: sqlRes,
	}
}
