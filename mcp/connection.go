package mcp

import (
	"context"
	"database/sql"
	"fmt"
)

// ConnectionProvider yields one fresh database session per call. The caller
// owns the session and must Close it.
type ConnectionProvider interface {
	Connect(ctx context.Context) (*Session, error)
}

// SQLProvider opens sessions through database/sql using a dialect's DSN.
type SQLProvider struct {
	cfg     Config
	dialect Dialect
}

// NewSQLProvider creates a provider for the configured driver
func NewSQLProvider(cfg Config, dialect Dialect) *SQLProvider {
	return &SQLProvider{cfg: cfg, dialect: dialect}
}

// Connect opens a dedicated handle, checks it is reachable and starts a
// transaction on it. Failures are returned as *ConnectionError.
func (p *SQLProvider) Connect(ctx context.Context) (*Session, error) {
	db, err := sql.Open(string(p.dialect.Driver()), p.dialect.DSN(p.cfg))
	if err != nil {
		return nil, newConnectionError(ErrConnectionFailed, err)
	}

	// One connection per session, never pooled across invocations
	db.SetMaxOpenConns(DBMaxOpenConns)
	db.SetMaxIdleConns(DBMaxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, DBPingTimeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, newConnectionError(ErrConnectionTestFailed, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, newConnectionError(ErrBeginTransaction, err)
	}

	return &Session{db: db, tx: tx}, nil
}

// Session is a single connection with an open transaction.
type Session struct {
	db     *sql.DB
	tx     *sql.Tx
	done   bool
	closed bool
}

// ResultSet is a fully fetched query result.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// HasResultSet reports whether the statement produced a result set at all.
// Statements such as SET or USE run through Query yield no columns.
func (r *ResultSet) HasResultSet() bool {
	return len(r.Columns) > 0
}

// Query runs a statement and fetches every row.
func (s *Session) Query(ctx context.Context, query string) (*ResultSet, error) {
	rows, err := s.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &ResultSet{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err = rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadingRow, err)
		}
		result.Rows = append(result.Rows, values)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingResults, err)
	}

	return result, nil
}

// Exec runs a statement that returns no rows and reports the affected row
// count as given by the driver.
func (s *Session) Exec(ctx context.Context, query string) (int64, error) {
	res, err := s.tx.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Commit commits the session transaction.
func (s *Session) Commit() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Commit()
}

// Close rolls back anything uncommitted and releases the connection.
// It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if !s.done {
		s.done = true
		_ = s.tx.Rollback()
	}
	return s.db.Close()
}
