package mcp

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL/MariaDB
type MySQLDialect struct {
	BaseDialect
}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{
		BaseDialect: BaseDialect{driver: DriverMySQL},
	}
}

// QuoteIdentifier returns `name`
func (d *MySQLDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf("`%s`", name)
}

// DSN returns the go-sql-driver/mysql data source name
func (d *MySQLDialect) DSN(cfg Config) string {
	c := mysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	c.DBName = cfg.Database
	return c.FormatDSN()
}

// ListTablesQuery lists base tables of the current database, views excluded
func (d *MySQLDialect) ListTablesQuery() string {
	return "SHOW FULL TABLES WHERE Table_type = 'BASE TABLE'"
}

// PreviewTableQuery returns LIMIT syntax
func (d *MySQLDialect) PreviewTableQuery(table string, limit int) string {
	return fmt.Sprintf("SELECT * FROM %s LIMIT %d", d.QuoteIdentifier(table), limit)
}
