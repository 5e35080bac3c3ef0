package store

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Gateway owns the single backend connection. It is used sequentially and
// every statement commits on its own.
type Gateway struct {
	conn   *pgx.Conn
	logger *zap.Logger
}

// Connect opens the connection described by config and verifies it.
func Connect(ctx context.Context, config *Config, logger *zap.Logger) (*Gateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	connErr := func(err error) error {
		return &ConnectionError{Host: config.Host, Port: config.Port, Database: config.Database, Err: err}
	}

	connConfig, err := pgx.ParseConfig(config.ConnectionURL())
	if err != nil {
		return nil, connErr(err)
	}

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, connErr(err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, connErr(err)
	}

	logger.Debug("connected", zap.String("url", config.DisplayURL()))

	return &Gateway{
		conn:   conn,
		logger: logger,
	}, nil
}

// Close releases the connection. It is safe on a nil or never-opened
// gateway and swallows disconnect errors.
func (g *Gateway) Close(ctx context.Context) {
	if g == nil || g.conn == nil {
		return
	}
	if err := g.conn.Close(ctx); err != nil {
		g.logger.Debug("close failed", zap.Error(err))
	}
	g.conn = nil
}

// Exec runs an INSERT, UPDATE, DELETE or DDL statement and returns the
// number of affected rows.
func (g *Gateway) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	if g == nil || g.conn == nil {
		return 0, ErrNoConnection
	}

	tag, err := g.conn.Exec(ctx, sql, args...)
	if err != nil {
		g.logger.Debug("exec failed", zap.String("sql", sql), zap.Error(err))
		return 0, &StatementError{SQL: sql, Err: err}
	}

	g.logger.Debug("exec", zap.String("sql", sql), zap.Int64("rows", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// Query runs a read statement and materializes every row as text, keeping
// the order the backend returned.
func (g *Gateway) Query(ctx context.Context, sql string, args ...any) (*Result, error) {
	if g == nil || g.conn == nil {
		return nil, ErrNoConnection
	}

	// Text result format for every column so values keep the server's rendering.
	queryArgs := make([]any, 0, len(args)+1)
	queryArgs = append(queryArgs, pgx.QueryResultFormats{pgx.TextFormatCode})
	queryArgs = append(queryArgs, args...)

	rows, err := g.conn.Query(ctx, sql, queryArgs...)
	if err != nil {
		g.logger.Debug("query failed", zap.String("sql", sql), zap.Error(err))
		return nil, &StatementError{SQL: sql, Err: err}
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := &Result{Columns: make([]string, len(fields))}
	for i, fd := range fields {
		result.Columns[i] = fd.Name
	}

	for rows.Next() {
		raw := rows.RawValues()
		row := make([]string, len(raw))
		for i, v := range raw {
			if v == nil {
				row[i] = NullText
				continue
			}
			row[i] = string(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		g.logger.Debug("query failed", zap.String("sql", sql), zap.Error(err))
		return nil, &StatementError{SQL: sql, Err: err}
	}

	g.logger.Debug("query", zap.String("sql", sql), zap.Int("rows", len(result.Rows)))
	return result, nil
}

// QueryPrint runs a read statement and prints it to w in tabular form,
// returning the row count.
func (g *Gateway) QueryPrint(ctx context.Context, w io.Writer, sql string, args ...any) (int, error) {
	result, err := g.Query(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return result.Print(w), nil
}
