package mcp

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct {
	BaseDialect
}

// NewPostgresDialect creates a new PostgreSQL dialect
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{
		BaseDialect: BaseDialect{driver: DriverPostgresSQL},
	}
}

// QuoteIdentifier returns "name"
func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

// DSN returns a postgres:// URL understood by lib/pq
func (d *PostgresDialect) DSN(cfg Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// ListTablesQuery lists base tables of the current schema
func (d *PostgresDialect) ListTablesQuery() string {
	return `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
			AND table_type = 'BASE TABLE'
		ORDER BY table_name`
}

// PreviewTableQuery returns LIMIT syntax
func (d *PostgresDialect) PreviewTableQuery(table string, limit int) string {
	return fmt.Sprintf("SELECT * FROM %s LIMIT %d", d.QuoteIdentifier(table), limit)
}
