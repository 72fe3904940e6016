package mcp

import (
	"fmt"
	"strings"
)

// OracleDialect implements Dialect for Oracle Database
type OracleDialect struct {
	BaseDialect
}

// NewOracleDialect creates a new Oracle dialect
func NewOracleDialect() *OracleDialect {
	return &OracleDialect{
		BaseDialect: BaseDialect{driver: DriverOracle},
	}
}

// QuoteIdentifier returns "NAME" (uppercase)
func (d *OracleDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, strings.ToUpper(name))
}

// DSN returns a godror logfmt connection string; the database is the service name
func (d *OracleDialect) DSN(cfg Config) string {
	return fmt.Sprintf(`user=%q password=%q connectString="%s:%d/%s"`,
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
}

// ListTablesQuery lists tables owned by the connected user
func (d *OracleDialect) ListTablesQuery() string {
	return "SELECT table_name FROM user_tables ORDER BY table_name"
}

// PreviewTableQuery returns FETCH FIRST syntax (Oracle 12c+)
func (d *OracleDialect) PreviewTableQuery(table string, limit int) string {
	return fmt.Sprintf("SELECT * FROM %s FETCH FIRST %d ROWS ONLY", d.QuoteIdentifier(table), limit)
}
