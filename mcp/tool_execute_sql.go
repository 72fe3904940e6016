package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	sqlquery "github.com/percona/go-mysql/query"
	"github.com/sirupsen/logrus"
)

// Dispatcher executes a single SQL statement per call and renders the
// outcome as text according to the statement kind.
type Dispatcher struct {
	provider ConnectionProvider
	database string
	timeout  time.Duration
	logger   *logrus.Entry
}

// NewDispatcher creates a dispatcher. database is used in the SHOW TABLES
// header; a zero timeout leaves statements unbounded.
func NewDispatcher(provider ConnectionProvider, database string, timeout time.Duration, logger *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		database: database,
		timeout:  timeout,
		logger:   logger,
	}
}

// Execute runs query on a fresh connection. Only an empty query is returned
// as an error; database failures are reported in the returned text.
func (d *Dispatcher) Execute(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", ErrQueryRequired
	}

	text, err := d.dispatch(ctx, query)
	if err != nil {
		d.logger.WithError(err).WithFields(logrus.Fields{
			"query":       query,
			"fingerprint": sqlquery.Fingerprint(query),
		}).Error("Error executing SQL")
		return fmt.Sprintf(MsgExecutionError, err.Error()), nil
	}

	return text, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, query string) (string, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	session, err := d.provider.Connect(ctx)
	if err != nil {
		return "", err
	}
	defer session.Close()

	kind := ClassifyStatement(query)
	d.logger.WithField("kind", kind.String()).Debug("Dispatching statement")

	if kind.Mutating() {
		affected, err := session.Exec(ctx, query)
		if err != nil {
			return "", err
		}
		if err = session.Commit(); err != nil {
			return "", err
		}
		if kind == KindDDL {
			return MsgDDLExecuted, nil
		}
		return fmt.Sprintf(MsgAffectedRows, affected), nil
	}

	result, err := session.Query(ctx, query)
	if err != nil {
		return "", err
	}

	switch kind {
	case KindShowTables:
		return formatList(fmt.Sprintf(MsgTablesHeader, d.database), result.Rows), nil

	case KindShowDatabases:
		return formatList(MsgDatabasesHeader, result.Rows), nil

	case KindSelect:
		if len(result.Rows) == 0 {
			return MsgNoResults, nil
		}
		return formatTable(result.Columns, result.Rows), nil

	case KindDescribe, KindShowColumns:
		if len(result.Rows) == 0 {
			return MsgNoColumns, nil
		}
		return formatTable(result.Columns, result.Rows), nil

	default:
		// No result set at all: treat as a write and commit it
		if !result.HasResultSet() {
			if err = session.Commit(); err != nil {
				return "", err
			}
			return MsgExecuted, nil
		}
		if len(result.Rows) == 0 {
			return MsgNoResults, nil
		}
		return formatTable(result.Columns, result.Rows), nil
	}
}

func (s *DbMCPServer) toolExecuteSQL() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool(ToolExecuteSQL,
		mcp.WithDescription("Execute an SQL query on the MySQL server"),
		mcp.WithString(ArgQuery,
			mcp.Required(),
			mcp.Description("The SQL query to execute"),
		),
	), s.handleExecuteSQL
}

func (s *DbMCPServer) handleExecuteSQL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.WithFields(logrus.Fields{
		"tool":      request.Params.Name,
		"arguments": request.Params.Arguments,
	}).Debug("Calling tool")

	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return nil, ErrInvalidArguments
	}

	query, _ := getStringArg(args, ArgQuery)
	text, err := s.dispatcher.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(text), nil
}
