package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Querier объединяет методы sqlx, общие для *sqlx.DB и *sqlx.Tx.
// Репозитории работают через этот интерфейс, поэтому один и тот же код
// выполняется как на пуле соединений, так и внутри открытой транзакции.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}
