package mcp

import "time"

// Server identity
const (
	ServerName = "mysql-mcp-server"
)

// Version is overridden at build time via -ldflags.
var Version = "0.1.0"

// Database connection configuration constants
const (
	DBMaxOpenConns = 1
	DBMaxIdleConns = 0
	DBPingTimeout  = 5 * time.Second
)

// Defaults for the environment configuration
const (
	DefaultHost     = "localhost"
	DefaultPort     = 3306
	DefaultDriver   = DriverMySQL
	DefaultLogLevel = "info"
)

// Table preview resource
const (
	ResourceScheme      = "mysql://"
	ResourceSuffix      = "/data"
	ResourceURITemplate = ResourceScheme + "{table}" + ResourceSuffix
	ResourceMIMEType    = "text/plain"
	PreviewRowLimit     = 100
)

// Tool
const (
	ToolExecuteSQL = "execute_sql"
	ArgQuery       = "query"
)

// Response texts
const (
	MsgNoResults       = "Query executed successfully. No results returned."
	MsgNoColumns       = "No columns found or table doesn't exist."
	MsgAffectedRows    = "Query executed successfully. Affected rows: %d"
	MsgDDLExecuted     = "DDL statement executed successfully."
	MsgExecuted        = "Query executed successfully."
	MsgExecutionError  = "Error executing query: %s"
	MsgTablesHeader    = "%s tables:"
	MsgDatabasesHeader = "Available databases:"
)

// Drivers
const (
	DriverSQLServer   DriverType = "sqlserver"
	DriverPostgresSQL DriverType = "postgres"
	DriverMySQL       DriverType = "mysql"
	DriverOracle      DriverType = "godror"
	DriverSQLite      DriverType = "sqlite3"
)
