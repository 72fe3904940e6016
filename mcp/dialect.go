package mcp

import "fmt"

// DriverType is a database/sql driver name
type DriverType string

// Dialect defines the interface for database-specific SQL and connection details
type Dialect interface {
	// Driver returns the driver type
	Driver() DriverType

	// QuoteIdentifier quotes an identifier (table, column name)
	QuoteIdentifier(name string) string

	// DSN builds the driver connection string from the configuration
	DSN(cfg Config) string

	// ListTablesQuery returns the query enumerating base tables; the table
	// name is the first column of every row
	ListTablesQuery() string

	// PreviewTableQuery returns a query selecting the first limit rows of table
	PreviewTableQuery(table string, limit int) string
}

// BaseDialect provides common functionality for all dialects
type BaseDialect struct {
	driver DriverType
}

// Driver returns the driver type
func (d *BaseDialect) Driver() DriverType {
	return d.driver
}

// NewDialect creates a new dialect for the given driver
func NewDialect(driver string) (Dialect, error) {
	switch DriverType(driver) {
	case DriverSQLServer:
		return NewSQLServerDialect(), nil
	case DriverPostgresSQL:
		return NewPostgresDialect(), nil
	case DriverMySQL:
		return NewMySQLDialect(), nil
	case DriverOracle:
		return NewOracleDialect(), nil
	case DriverSQLite:
		return NewSQLiteDialect(), nil
	default:
		return nil, fmt.Errorf("%w: '%s'. Supported drivers: mysql, postgres, sqlserver, godror, sqlite3", ErrInvalidDriver, driver)
	}
}
