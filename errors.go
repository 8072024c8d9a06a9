package activerecord

import "github.com/coderi421/activerecord/internal/errs"

// 将内部的 sentinel error 暴露出去，使用 errors.Is 判断
var (
	// ErrArgumentCount Load 的参数数量和主键的列数不一致
	ErrArgumentCount = errs.ErrArgumentCount
	// ErrTooFewPrimaryKeyValues 和 ErrTooManyPrimaryKeyValues 都属于 ErrArgumentCount
	ErrTooFewPrimaryKeyValues  = errs.ErrTooFewPrimaryKeyValues
	ErrTooManyPrimaryKeyValues = errs.ErrTooManyPrimaryKeyValues

	// ErrConfiguration 构造 ActiveRecord 的参数不对
	ErrConfiguration  = errs.ErrConfiguration
	ErrInvalidAdapter = errs.ErrInvalidAdapter
	ErrNoPrimaryKey   = errs.ErrNoPrimaryKey
	ErrNoTable        = errs.ErrNoTable

	// ErrCapability 原型不支持 Clear, Populate 和 Clone
	ErrCapability = errs.ErrCapability

	// ErrRowNotLoaded 记录还没有从数据库加载，或者还没有保存
	ErrRowNotLoaded = errs.ErrRowNotLoaded
	// ErrMissingPrimaryKey 数据来自数据库，但是查询的列里面没有主键
	ErrMissingPrimaryKey = errs.ErrMissingPrimaryKey
)
