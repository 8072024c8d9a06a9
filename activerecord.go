// Package activerecord 让一张表对应的记录可以自己构造查询、执行查询，并把结果映射成记录
package activerecord

import (
	"context"
	"sort"

	"github.com/coderi421/activerecord/internal/errs"
	"github.com/coderi421/activerecord/orm"
	"github.com/samber/lo"
)

// StatementBuilder 负责构造 SQL 以及准备可执行的语句
// *orm.SQL 就是一个实现
type StatementBuilder interface {
	Table() string
	Select() *orm.Selector
	Update() *orm.Updater
	Delete() *orm.Deleter
	Insert() *orm.Inserter
	Prepare(q orm.QueryBuilder) (orm.Statement, error)
}

var (
	_ StatementBuilder = &orm.SQL{}
	_ Prototype        = &ActiveRecord{}
)

type Option func(ar *ActiveRecord) error

// WithPrototype 指定结果集中每一行使用的原型，默认使用 ActiveRecord 自身
func WithPrototype(p any) Option {
	return func(ar *ActiveRecord) error {
		proto, ok := p.(Prototype)
		if !ok {
			return errs.NewErrUnsupportedPrototype(p)
		}
		ar.prototype = proto
		return nil
	}
}

// ActiveRecord 代表一张表中的一行数据，同时也是这张表的查询入口
// 不是并发安全的，并发使用的时候每个 goroutine 使用自己的实例
type ActiveRecord struct {
	table      string
	primaryKey []string
	sql        StatementBuilder
	// prototype 为 nil 的时候使用自身作为原型
	prototype Prototype

	// selector 正在构造的查询，为 nil 的时候在第一次使用时创建
	selector   *orm.Selector
	attributes map[string]any
	// persisted 数据是否来自数据库，或者已经保存过
	persisted bool
	// primaryKeyData 数据来自数据库的时候，记录下主键的值，用于 Save 和 Delete
	// 查询的列里面没有全部主键列的时候为 nil
	primaryKeyData []any
}

// New adapterOrSQL 可以是 StatementBuilder，也可以是 orm.Session（例如 *orm.DB）
func New(primaryKey []string, table string, adapterOrSQL any, opts ...Option) (*ActiveRecord, error) {
	if len(primaryKey) == 0 {
		return nil, errs.ErrNoPrimaryKey
	}
	if table == "" {
		return nil, errs.ErrNoTable
	}

	ar := &ActiveRecord{
		table:      table,
		primaryKey: append([]string(nil), primaryKey...),
		attributes: map[string]any{},
	}

	switch s := adapterOrSQL.(type) {
	case StatementBuilder:
		ar.sql = s
	case orm.Session:
		ar.sql = orm.NewSQL(s, table)
	default:
		return nil, errs.ErrInvalidAdapter
	}

	if got := ar.sql.Table(); got != table {
		return nil, errs.NewErrTableMismatch(table, got)
	}

	for _, opt := range opts {
		if err := opt(ar); err != nil {
			return nil, err
		}
	}
	return ar, nil
}

func (ar *ActiveRecord) Table() string {
	return ar.table
}

func (ar *ActiveRecord) PrimaryKey() []string {
	return append([]string(nil), ar.primaryKey...)
}

// Load 根据主键加载数据，pk 的数量必须和主键的列数完全一致
// 没有数据的时候返回 nil, nil
// 不会自动加上 LIMIT 1，主键需要确实是唯一的
func (ar *ActiveRecord) Load(ctx context.Context, pk []any) (Row, error) {
	ar.Clean()

	if len(pk) < len(ar.primaryKey) {
		return nil, errs.ErrTooFewPrimaryKeyValues
	}
	if len(pk) > len(ar.primaryKey) {
		return nil, errs.ErrTooManyPrimaryKeyValues
	}

	// 每次 Load 都从一个全新的查询开始
	ar.Reset()
	ar.Where(ar.primaryKeyPredicate(pk), orm.CombineAnd)

	rs, err := ar.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rs.Close() }()

	if !rs.Next() {
		return nil, rs.Err()
	}
	if rs.data != nil {
		if err = ar.Populate(rs.data); err != nil {
			return nil, err
		}
	}
	return rs.Current(), nil
}

// Fetch 执行当前构造的查询，不会修改或者重置它
func (ar *ActiveRecord) Fetch(ctx context.Context) (*ResultSet, error) {
	return ar.FetchWith(ctx, ar.Select())
}

// FetchWith 执行传入的查询，例如 ar.Select() 之外另外构造的 *orm.Selector 或者 orm.RawQuery
func (ar *ActiveRecord) FetchWith(ctx context.Context, q orm.QueryBuilder) (*ResultSet, error) {
	rows, err := ar.query(ctx, q)
	if err != nil {
		return nil, err
	}
	return ar.resultSet().Bind(rows), nil
}

// FetchOne 在当前查询上设置 LIMIT 1，没有数据的时候返回 nil, nil
func (ar *ActiveRecord) FetchOne(ctx context.Context) (Row, error) {
	ar.Limit(1)
	rs, err := ar.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rs.Close() }()

	if !rs.Next() {
		return nil, rs.Err()
	}
	return rs.Current(), nil
}

// FetchPairs 只查询 keyColumn 和 valueColumn 两列，返回 key -> value
// key 重复的时候，后面的行覆盖前面的行
func (ar *ActiveRecord) FetchPairs(ctx context.Context, keyColumn, valueColumn string) (map[any]any, error) {
	ar.Columns([]string{keyColumn, valueColumn}, true)
	rows, err := ar.query(ctx, ar.Select())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	pairs := make(map[any]any)
	for rows.Next() {
		data := rows.Row()
		pairs[data[keyColumn]] = data[valueColumn]
	}
	return pairs, rows.Err()
}

// Update 更新满足条件的行，不会同步到当前实例，需要重新 Load
func (ar *ActiveRecord) Update(ctx context.Context, set map[string]any, where orm.Predicate) (*ActiveRecord, error) {
	up := ar.sql.Update().Set(assignments(set)...).Where(where)
	if err := ar.exec(ctx, up).Err(); err != nil {
		return nil, err
	}
	return ar, nil
}

// DeleteWhere 删除满足条件的行
func (ar *ActiveRecord) DeleteWhere(ctx context.Context, where orm.Predicate) (*ActiveRecord, error) {
	del := ar.sql.Delete().Where(where)
	if err := ar.exec(ctx, del).Err(); err != nil {
		return nil, err
	}
	return ar, nil
}

// Save 数据来自数据库的时候，按照原来的主键更新全部列，否则插入一行
// 主键只有一列，并且没有设置主键的时候，使用 LastInsertId 作为主键
// 数据来自数据库但是没有查询主键列的时候，返回 ErrMissingPrimaryKey
func (ar *ActiveRecord) Save(ctx context.Context) (int64, error) {
	if ar.Exists() {
		if ar.primaryKeyData == nil {
			return 0, errs.NewErrMissingPrimaryKey(ar.primaryKey)
		}
		up := ar.sql.Update().
			Set(assignments(ar.attributes)...).
			Where(ar.primaryKeyPredicate(ar.primaryKeyData))
		n, err := ar.exec(ctx, up).RowsAffected()
		if err != nil {
			return 0, err
		}
		ar.primaryKeyData = ar.primaryKeyValues()
		return n, nil
	}

	cols := sortedKeys(ar.attributes)
	vals := lo.Map(cols, func(c string, _ int) any { return ar.attributes[c] })
	res := ar.exec(ctx, ar.sql.Insert().Columns(cols...).Values(vals...))
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if len(ar.primaryKey) == 1 {
		if _, ok := ar.attributes[ar.primaryKey[0]]; !ok {
			id, err := res.LastInsertId()
			if err != nil {
				return n, err
			}
			ar.attributes[ar.primaryKey[0]] = id
		}
	}
	ar.persisted = true
	ar.primaryKeyData = ar.primaryKeyValues()
	return n, nil
}

// Delete 按照原来的主键删除这一行
func (ar *ActiveRecord) Delete(ctx context.Context) (int64, error) {
	if !ar.Exists() {
		return 0, errs.ErrRowNotLoaded
	}
	if ar.primaryKeyData == nil {
		return 0, errs.NewErrMissingPrimaryKey(ar.primaryKey)
	}
	n, err := ar.exec(ctx, ar.sql.Delete().Where(ar.primaryKeyPredicate(ar.primaryKeyData))).RowsAffected()
	if err != nil {
		return 0, err
	}
	ar.persisted = false
	ar.primaryKeyData = nil
	return n, nil
}

// Clean 清空数据，不会影响正在构造的查询
func (ar *ActiveRecord) Clean() {
	ar.Clear()
}

// Clear 实现 Row
func (ar *ActiveRecord) Clear() {
	ar.attributes = map[string]any{}
	ar.persisted = false
	ar.primaryKeyData = nil
}

// Populate 实现 Row，data 被认为是来自数据库的数据
func (ar *ActiveRecord) Populate(data map[string]any) error {
	ar.attributes = lo.Assign(data)
	ar.persisted = true
	ar.primaryKeyData = ar.primaryKeyValues()
	return nil
}

// Clone 实现 Prototype，新的实例共享表、主键和 StatementBuilder，但是没有数据也没有查询
func (ar *ActiveRecord) Clone() Row {
	return &ActiveRecord{
		table:      ar.table,
		primaryKey: ar.primaryKey,
		sql:        ar.sql,
		prototype:  ar.prototype,
		attributes: map[string]any{},
	}
}

func (ar *ActiveRecord) Get(col string) (any, bool) {
	val, ok := ar.attributes[col]
	return val, ok
}

func (ar *ActiveRecord) Set(col string, val any) *ActiveRecord {
	ar.attributes[col] = val
	return ar
}

// Attributes 返回数据的副本
func (ar *ActiveRecord) Attributes() map[string]any {
	return lo.Assign(ar.attributes)
}

// Exists 数据是否来自数据库，和查询了哪些列无关
func (ar *ActiveRecord) Exists() bool {
	return ar.persisted
}

func (ar *ActiveRecord) resultSet() *ResultSet {
	proto := ar.prototype
	if proto == nil {
		proto = ar
	}
	return &ResultSet{prototype: proto}
}

func (ar *ActiveRecord) query(ctx context.Context, q orm.QueryBuilder) (orm.RowIterator, error) {
	stmt, err := ar.sql.Prepare(q)
	if err != nil {
		return nil, err
	}
	return stmt.Query(ctx)
}

func (ar *ActiveRecord) exec(ctx context.Context, q orm.QueryBuilder) orm.Result {
	stmt, err := ar.sql.Prepare(q)
	if err != nil {
		return orm.NewResult(nil, err)
	}
	return stmt.Exec(ctx)
}

// primaryKeyPredicate 按照主键列的顺序构造 `k1` = ? AND `k2` = ?
func (ar *ActiveRecord) primaryKeyPredicate(pk []any) orm.Predicate {
	p := orm.C(ar.primaryKey[0]).EQ(pk[0])
	for i := 1; i < len(ar.primaryKey); i++ {
		p = p.And(orm.C(ar.primaryKey[i]).EQ(pk[i]))
	}
	return p
}

// primaryKeyValues 数据中缺少任何一个主键列的时候返回 nil
func (ar *ActiveRecord) primaryKeyValues() []any {
	vals := make([]any, 0, len(ar.primaryKey))
	for _, c := range ar.primaryKey {
		val, ok := ar.attributes[c]
		if !ok {
			return nil
		}
		vals = append(vals, val)
	}
	return vals
}

// assignments 按照列名排序，保证生成的 SQL 是稳定的
func assignments(set map[string]any) []orm.Assignable {
	return lo.Map(sortedKeys(set), func(c string, _ int) orm.Assignable {
		return orm.Assign(c, set[c])
	})
}

func sortedKeys(m map[string]any) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
