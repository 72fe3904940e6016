package mcp

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// SQLServerDialect implements Dialect for Microsoft SQL Server
type SQLServerDialect struct {
	BaseDialect
}

// NewSQLServerDialect creates a new SQL Server dialect
func NewSQLServerDialect() *SQLServerDialect {
	return &SQLServerDialect{
		BaseDialect: BaseDialect{driver: DriverSQLServer},
	}
}

// QuoteIdentifier returns [name]
func (d *SQLServerDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf("[%s]", name)
}

// DSN returns a sqlserver:// URL understood by go-mssqldb
func (d *SQLServerDialect) DSN(cfg Config) string {
	q := url.Values{}
	q.Set("database", cfg.Database)
	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// ListTablesQuery lists base tables of the current database
func (d *SQLServerDialect) ListTablesQuery() string {
	return `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME`
}

// PreviewTableQuery returns TOP syntax
func (d *SQLServerDialect) PreviewTableQuery(table string, limit int) string {
	return fmt.Sprintf("SELECT TOP %d * FROM %s", limit, d.QuoteIdentifier(table))
}
