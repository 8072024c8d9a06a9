package orm

// JoinType 连接的类型
type JoinType string

const (
	JoinInner     JoinType = "INNER"
	JoinLeft      JoinType = "LEFT"
	JoinRight     JoinType = "RIGHT"
	JoinFullOuter JoinType = "FULL OUTER"
)

// Table 代表一张表，可以设置别名
type Table struct {
	name  string
	alias string
}

func TableOf(name string) Table {
	return Table{name: name}
}

func (t Table) As(alias string) Table {
	return Table{
		name:  t.name,
		alias: alias,
	}
}

// C 返回属于这张表的列，有别名的时候使用别名
func (t Table) C(name string) Column {
	return Column{
		table: t.ref(),
		name:  name,
	}
}

func (t Table) ref() string {
	if t.alias != "" {
		return t.alias
	}
	return t.name
}

// join 一个 JOIN 子句
// columns 是需要从 JOIN 的表里面额外查询的列
type join struct {
	table   Table
	on      Predicate
	columns []string
	typ     JoinType
}
