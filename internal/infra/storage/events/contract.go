package events

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов, реализуется *sql.DB.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
