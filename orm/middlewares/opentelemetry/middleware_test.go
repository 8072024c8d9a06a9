package opentelemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/activerecord/orm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMiddlewareBuilder_Build(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	builder := MiddlewareBuilder{Tracer: tp.Tracer("test")}

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = mockDB.Close() }()
	db, err := orm.OpenDB(mockDB, orm.DBWithDialect(orm.MySQL), orm.DBWithMiddlewares(builder.Build()))
	require.NoError(t, err)
	s := orm.NewSQL(db, "users")

	mock.ExpectQuery("SELECT * FROM `users` WHERE `id` = ?;").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("UPDATE `users` SET `name`=?;").
		WithArgs("Tom").
		WillReturnError(errors.New("boom"))

	stmt, err := s.Prepare(s.Select().Where(orm.C("id").EQ(1)))
	require.NoError(t, err)
	rows, err := stmt.Query(context.Background())
	require.NoError(t, err)
	_ = rows.Close()

	stmt, err = s.Prepare(s.Update().Set(orm.Assign("name", "Tom")))
	require.NoError(t, err)
	assert.Error(t, stmt.Exec(context.Background()).Err())

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "SELECT users", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("sql", "SELECT * FROM `users` WHERE `id` = ?;"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("table", "users"))
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "UPDATE users", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "boom", spans[1].Status().Description)
}
