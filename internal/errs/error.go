package errs

import (
	"errors"
	"fmt"
	"strings"
)

// 错误的三大类，调用方可以通过 errors.Is 判断
var (
	// ErrArgumentCount 传入的参数数量不对
	ErrArgumentCount = errors.New("activerecord: argument count mismatch")
	// ErrConfiguration 构造 ActiveRecord 的时候配置不对
	ErrConfiguration = errors.New("activerecord: invalid configuration")
	// ErrCapability 原型不支持 clear-and-populate
	ErrCapability = errors.New("activerecord: unsupported row prototype")
)

var (
	ErrTooFewPrimaryKeyValues  = fmt.Errorf("%w: too few columns for the primary key", ErrArgumentCount)
	ErrTooManyPrimaryKeyValues = fmt.Errorf("%w: too many columns for the primary key", ErrArgumentCount)

	ErrInvalidAdapter = fmt.Errorf("%w: a valid adapter or statement builder was not provided", ErrConfiguration)
	ErrNoPrimaryKey   = fmt.Errorf("%w: at least one primary key column is required", ErrConfiguration)
	ErrNoTable        = fmt.Errorf("%w: table name is empty", ErrConfiguration)

	ErrRowNotLoaded = errors.New("activerecord: row does not exist in the database")
	// ErrMissingPrimaryKey 数据来自数据库，但是没有查询全部主键列
	ErrMissingPrimaryKey = errors.New("activerecord: primary key was not loaded")

	ErrNoUpdatedColumns = errors.New("orm: no columns to update")
	ErrInsertZeroRow    = errors.New("orm: no rows to insert")
	ErrNoInsertColumns  = errors.New("orm: no columns to insert")
	ErrNoRows           = errors.New("orm: no rows in result set")
)

func NewErrTableMismatch(want, got string) error {
	return fmt.Errorf("%w: statement builder is bound to table %q, record declares %q", ErrConfiguration, got, want)
}

func NewErrUnsupportedPrototype(p any) error {
	return fmt.Errorf("%w: %T must implement Clear, Populate and Clone", ErrCapability, p)
}

func NewErrUnexpectedRowType(want string, got any) error {
	return fmt.Errorf("%w: expected %s, got %T", ErrCapability, want, got)
}

func NewErrMissingPrimaryKey(cols []string) error {
	return fmt.Errorf("%w: select %s to save or delete the row", ErrMissingPrimaryKey, strings.Join(cols, ", "))
}

func NewErrUnknownPart(part string) error {
	return fmt.Errorf("orm: unknown select part %q", part)
}

func NewErrUnsupportedExpressionType(expr any) error {
	return fmt.Errorf("orm: unsupported expression %v", expr)
}

func NewErrUnsupportedSelectable(exp any) error {
	return fmt.Errorf("orm: unsupported selectable %v", exp)
}

func NewErrUnsupportedAssignableType(exp any) error {
	return fmt.Errorf("orm: unsupported assignable %v", exp)
}

func NewErrEmptyInValues(col string) error {
	return fmt.Errorf("orm: IN on column %s needs at least one value", col)
}

func NewErrInsertValueCount(cols, vals int) error {
	return fmt.Errorf("orm: insert has %d columns but a row carries %d values", cols, vals)
}

func NewErrUnexpectedQueryResult(res any) error {
	return fmt.Errorf("orm: unexpected query result %T", res)
}
