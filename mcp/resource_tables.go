package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// Lister exposes database tables as resources.
type Lister struct {
	provider ConnectionProvider
	dialect  Dialect
	logger   *logrus.Entry
}

// NewLister creates a table lister
func NewLister(provider ConnectionProvider, dialect Dialect, logger *logrus.Entry) *Lister {
	return &Lister{
		provider: provider,
		dialect:  dialect,
		logger:   logger,
	}
}

// List returns one resource per base table. Listing is advisory, so any
// failure is logged and yields an empty list.
func (l *Lister) List(ctx context.Context) []mcp.Resource {
	resources := []mcp.Resource{}

	tables, err := l.tables(ctx)
	if err != nil {
		l.logger.WithError(err).Error("Failed to list resources")
		return resources
	}
	l.logger.WithField("tables", tables).Info("Found tables")

	for _, table := range tables {
		// Only names the preview template can address are listed
		if !isValidIdentifier(table) {
			l.logger.WithField("table", table).Warn("Skipping table with unsupported name")
			continue
		}
		resources = append(resources, mcp.NewResource(
			TableURI(table),
			fmt.Sprintf("Table: %s", table),
			mcp.WithMIMEType(ResourceMIMEType),
			mcp.WithResourceDescription(fmt.Sprintf("Data in table: %s", table)),
		))
	}
	return resources
}

func (l *Lister) tables(ctx context.Context) ([]string, error) {
	session, err := l.provider.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	result, err := session.Query(ctx, l.dialect.ListTablesQuery())
	if err != nil {
		return nil, err
	}

	tables := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) == 0 {
			continue
		}
		tables = append(tables, formatValue(row[0]))
	}
	return tables, nil
}

// Read returns the first rows of the table addressed by uri as
// comma-separated text, header first.
func (l *Lister) Read(ctx context.Context, uri string) (string, error) {
	table, err := ParseTableURI(uri)
	if err != nil {
		return "", err
	}

	session, err := l.provider.Connect(ctx)
	if err != nil {
		return "", err
	}
	defer session.Close()

	result, err := session.Query(ctx, l.dialect.PreviewTableQuery(table, PreviewRowLimit))
	if err != nil {
		l.logger.WithError(err).WithField("uri", uri).Error("Database error reading resource")
		return "", fmt.Errorf("%w: %v", ErrReadingResource, err)
	}

	return formatCSV(result.Columns, result.Rows), nil
}

// TableURI returns the resource URI of a table
func TableURI(table string) string {
	return ResourceScheme + table + ResourceSuffix
}

// ParseTableURI extracts the table name from mysql://{table}/data
func ParseTableURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, ResourceScheme) || !strings.HasSuffix(uri, ResourceSuffix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidResourceURI, uri)
	}

	table := strings.TrimSuffix(strings.TrimPrefix(uri, ResourceScheme), ResourceSuffix)
	if !isValidIdentifier(table) {
		return "", fmt.Errorf("%w: %s", ErrInvalidTableName, table)
	}
	return table, nil
}

func (s *DbMCPServer) resourceTableData() (mcp.ResourceTemplate, server.ResourceTemplateHandlerFunc) {
	return mcp.NewResourceTemplate(ResourceURITemplate, "Table data",
		mcp.WithTemplateDescription(fmt.Sprintf("First %d rows of a table as comma-separated text", PreviewRowLimit)),
		mcp.WithTemplateMIMEType(ResourceMIMEType),
	), s.handleReadTableData
}

func (s *DbMCPServer) handleReadTableData(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.logger.WithField("uri", request.Params.URI).Debug("Reading resource")

	text, err := s.lister.Read(ctx, request.Params.URI)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: ResourceMIMEType,
			Text:     text,
		},
	}, nil
}

// mcp-go only lists statically registered resources, so the table list is
// swapped in after every resources/list request.
func (s *DbMCPServer) listTableResources(ctx context.Context, id any, message *mcp.ListResourcesRequest, result *mcp.ListResourcesResult) {
	result.Resources = s.lister.List(ctx)
}
