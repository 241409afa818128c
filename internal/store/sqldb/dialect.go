package sqldb

// dialect captures the few places SQLite and MySQL disagree.
type dialect struct {
	driver string
	schema string
	// noLimit is the LIMIT value meaning "all rows", needed when only an
	// OFFSET is requested.
	noLimit string
}

var (
	sqliteDialect = dialect{driver: "sqlite", schema: schemaSQLite, noLimit: "-1"}
	mysqlDialect  = dialect{driver: "mysql", schema: schemaMySQL, noLimit: "18446744073709551615"}
)

// quote wraps an identifier in backticks. Both engines accept them, and
// "references" is reserved in both.
func quote(ident string) string {
	return "`" + ident + "`"
}
