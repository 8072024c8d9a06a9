package orm

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/activerecord/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSQL(t *testing.T, table string, opts ...DBOption) (*SQL, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := OpenDB(mockDB, append([]DBOption{DBWithDialect(MySQL)}, opts...)...)
	require.NoError(t, err)
	return NewSQL(db, table), mock
}

func TestSQL_Builders(t *testing.T) {
	s, _ := newMockSQL(t, "users")
	assert.Equal(t, "users", s.Table())

	testCases := []struct {
		name    string
		q       QueryBuilder
		wantSQL string
	}{
		{
			name:    "select",
			q:       s.Select(),
			wantSQL: "SELECT * FROM `users`;",
		},
		{
			name:    "update",
			q:       s.Update().Set(Assign("name", "Tom")),
			wantSQL: "UPDATE `users` SET `name`=?;",
		},
		{
			name:    "delete",
			q:       s.Delete(),
			wantSQL: "DELETE FROM `users`;",
		},
		{
			name:    "insert",
			q:       s.Insert().Columns("name").Values("Tom"),
			wantSQL: "INSERT INTO `users` (`name`) VALUES (?);",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.q.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, q.SQL)
		})
	}
}

func TestStatement_Query(t *testing.T) {
	s, mock := newMockSQL(t, "users")

	mock.ExpectQuery("SELECT * FROM `users` WHERE `id` = ?;").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Tom"))

	stmt, err := s.Prepare(s.Select().Where(C("id").EQ(1)))
	require.NoError(t, err)
	rows, err := stmt.Query(context.Background())
	require.NoError(t, err)

	require.True(t, rows.Next())
	assert.Equal(t, map[string]any{"id": int64(1), "name": "Tom"}, rows.Row())
	assert.False(t, rows.Next())
	assert.NoError(t, rows.Err())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatement_QueryError(t *testing.T) {
	s, mock := newMockSQL(t, "users")
	boom := errors.New("boom")
	mock.ExpectQuery("SELECT * FROM `users`;").WillReturnError(boom)

	stmt, err := s.Prepare(s.Select())
	require.NoError(t, err)
	_, err = stmt.Query(context.Background())
	// driver 返回的错误原样返回
	assert.Equal(t, boom, err)
}

func TestStatement_Exec(t *testing.T) {
	s, mock := newMockSQL(t, "users")
	mock.ExpectExec("UPDATE `users` SET `status`=? WHERE `id` = ?;").
		WithArgs("active", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	stmt, err := s.Prepare(s.Update().Set(Assign("status", "active")).Where(C("id").EQ(42)))
	require.NoError(t, err)
	res := stmt.Exec(context.Background())
	require.NoError(t, res.Err())
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatement_ExecError(t *testing.T) {
	s, mock := newMockSQL(t, "users")
	boom := errors.New("boom")
	mock.ExpectExec("DELETE FROM `users`;").WillReturnError(boom)

	stmt, err := s.Prepare(s.Delete())
	require.NoError(t, err)
	res := stmt.Exec(context.Background())
	assert.Equal(t, boom, res.Err())
	_, err = res.LastInsertId()
	assert.Equal(t, boom, err)
}

func TestSQL_PrepareBuildError(t *testing.T) {
	s, _ := newMockSQL(t, "users")
	_, err := s.Prepare(s.Update())
	assert.Equal(t, errs.ErrNoUpdatedColumns, err)
}

func TestStatement_Middlewares(t *testing.T) {
	var trace []string
	var got *QueryContext
	mdl := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, qc *QueryContext) *QueryResult {
				trace = append(trace, name+" before")
				got = qc
				res := next(ctx, qc)
				trace = append(trace, name+" after")
				return res
			}
		}
	}
	s, mock := newMockSQL(t, "users", DBWithMiddlewares(mdl("first"), mdl("second")))
	mock.ExpectQuery("SELECT id FROM users;").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	stmt, err := s.Prepare(RawQuery("SELECT id FROM users;"))
	require.NoError(t, err)
	rows, err := stmt.Query(context.Background())
	require.NoError(t, err)
	assert.NoError(t, rows.Close())

	assert.Equal(t, []string{"first before", "second before", "second after", "first after"}, trace)
	assert.Equal(t, "RAW", got.Type)
	assert.Equal(t, "users", got.Table)
	assert.Equal(t, &Query{SQL: "SELECT id FROM users;"}, got.Query)
}

func TestStatement_MiddlewareShortCircuit(t *testing.T) {
	denied := errors.New("denied")
	s, _ := newMockSQL(t, "users", DBWithMiddlewares(func(next Handler) Handler {
		return func(ctx context.Context, qc *QueryContext) *QueryResult {
			if qc.Type == "DELETE" {
				return &QueryResult{Err: denied}
			}
			return &QueryResult{}
		}
	}))

	stmt, err := s.Prepare(s.Delete())
	require.NoError(t, err)
	assert.Equal(t, denied, stmt.Exec(context.Background()).Err())

	stmt, err = s.Prepare(s.Select())
	require.NoError(t, err)
	_, err = stmt.Query(context.Background())
	assert.Equal(t, errs.NewErrUnexpectedQueryResult(nil), err)

	// 空的 QueryResult 不会导致 panic
	stmt, err = s.Prepare(s.Update().Set(Assign("name", "Tom")))
	require.NoError(t, err)
	res := stmt.Exec(context.Background())
	assert.Equal(t, errs.NewErrUnexpectedQueryResult(nil), res.Err())
	_, err = res.RowsAffected()
	assert.Equal(t, errs.NewErrUnexpectedQueryResult(nil), err)
	_, err = res.LastInsertId()
	assert.Equal(t, errs.NewErrUnexpectedQueryResult(nil), err)
}

func TestResult_Zero(t *testing.T) {
	var res Result
	assert.Error(t, res.Err())
	assert.NotPanics(t, func() {
		_, err := res.RowsAffected()
		assert.Error(t, err)
		_, err = res.LastInsertId()
		assert.Error(t, err)
	})
	res = NewResult(nil, errors.New("boom"))
	assert.EqualError(t, res.Err(), "boom")
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "SELECT", typeOf(&Selector{}))
	assert.Equal(t, "UPDATE", typeOf(&Updater{}))
	assert.Equal(t, "DELETE", typeOf(&Deleter{}))
	assert.Equal(t, "INSERT", typeOf(&Inserter{}))
	assert.Equal(t, "RAW", typeOf(RawQuery("SELECT 1")))
}
