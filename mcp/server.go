package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// DbMCPServer exposes the database over MCP: the execute_sql tool, one
// resource per table and a table preview template.
type DbMCPServer struct {
	server     *server.MCPServer
	dispatcher *Dispatcher
	lister     *Lister
	logger     *logrus.Entry
}

// NewMcpServer creates a new MCP server instance for the configured database.
func NewMcpServer(cfg Config, logger *logrus.Entry) (*DbMCPServer, error) {
	dialect, err := NewDialect(string(cfg.Driver))
	if err != nil {
		return nil, err
	}
	return newMcpServer(NewSQLProvider(cfg, dialect), dialect, cfg, logger), nil
}

func newMcpServer(provider ConnectionProvider, dialect Dialect, cfg Config, logger *logrus.Entry) *DbMCPServer {
	dbMCPServer := &DbMCPServer{
		dispatcher: NewDispatcher(provider, cfg.Database, cfg.QueryTimeout, logger),
		lister:     NewLister(provider, dialect, logger),
		logger:     logger,
	}

	hooks := &server.Hooks{}
	hooks.AddAfterListResources(dbMCPServer.listTableResources)

	dbMCPServer.server = server.NewMCPServer(
		ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithHooks(hooks),
		server.WithRecovery(),
	)

	dbMCPServer.server.AddTool(dbMCPServer.toolExecuteSQL())
	dbMCPServer.server.AddResourceTemplate(dbMCPServer.resourceTableData())

	return dbMCPServer
}

// Start starts the MCP server in stdio mode
func (s *DbMCPServer) Start() error {
	errorLog := log.New(s.logger.WriterLevel(logrus.ErrorLevel), "", 0)
	return server.ServeStdio(s.server, server.WithErrorLogger(errorLog))
}
