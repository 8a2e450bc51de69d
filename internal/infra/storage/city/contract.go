package city

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов (*sql.DB, *sql.Tx)
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
