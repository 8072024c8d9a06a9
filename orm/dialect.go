package orm

var (
	MySQL       Dialect = &mysqlDialect{}
	SQLite3     Dialect = &sqlite3Dialect{}
	StandardSQL Dialect = &standardSQL{}
)

// Dialect 不同数据库之间的差异
// 目前只处理了标识符的引号
type Dialect interface {
	quoter() byte
}

type standardSQL struct {
}

func (s *standardSQL) quoter() byte {
	return '"'
}

type mysqlDialect struct {
	standardSQL
}

func (m *mysqlDialect) quoter() byte {
	return '`'
}

type sqlite3Dialect struct {
	standardSQL
}

func (s *sqlite3Dialect) quoter() byte {
	return '`'
}

// dialectOf 根据驱动的名字选择方言
func dialectOf(driver string) Dialect {
	switch driver {
	case "mysql":
		return MySQL
	case "sqlite3":
		return SQLite3
	default:
		return StandardSQL
	}
}
