package mcp

import "fmt"

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct {
	BaseDialect
}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{
		BaseDialect: BaseDialect{driver: DriverSQLite},
	}
}

// QuoteIdentifier returns "name"
func (d *SQLiteDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

// DSN returns the database file path; host, port and credentials are unused
func (d *SQLiteDialect) DSN(cfg Config) string {
	return cfg.Database
}

// ListTablesQuery lists user tables, skipping sqlite internals
func (d *SQLiteDialect) ListTablesQuery() string {
	return `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
			AND name NOT LIKE 'sqlite_%'
		ORDER BY name`
}

// PreviewTableQuery returns LIMIT syntax
func (d *SQLiteDialect) PreviewTableQuery(table string, limit int) string {
	return fmt.Sprintf("SELECT * FROM %s LIMIT %d", d.QuoteIdentifier(table), limit)
}
