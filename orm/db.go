package orm

import (
	"context"
	"database/sql"
)

type DBOption func(*DB)

// DB 是 sql.DB 的装饰器
type DB struct {
	core
	db *sql.DB
}

// Open 创建一个 DB 实例。
// 默认情况下，方言由驱动的名字决定
func Open(driver string, dsn string, opts ...DBOption) (*DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	return OpenDB(db, append([]DBOption{DBWithDialect(dialectOf(driver))}, opts...)...)
}

// OpenDB 可以利用 OpenDB 来传入一个 mock 的 DB
func OpenDB(db *sql.DB, opts ...DBOption) (*DB, error) {
	res := &DB{
		core: core{
			dialect: StandardSQL,
		},
		db: db,
	}

	// Apply each option to the DB instance.
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

// MustOpen creates a new DB with the provided options.
// If the creation fails, it panics.
func MustOpen(driver string, dsn string, opts ...DBOption) *DB {
	db, err := Open(driver, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

func DBWithDialect(d Dialect) DBOption {
	return func(db *DB) {
		db.dialect = d
	}
}

func DBWithMiddlewares(mdls ...Middleware) DBOption {
	return func(db *DB) {
		db.mdls = append(db.mdls, mdls...)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) getCore() core {
	return d.core
}

func (d *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.db.ExecContext(ctx, query, args...)
}
