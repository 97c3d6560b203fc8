package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações de leitura/escrita exposto pela
// conexão, usado por repositórios que não precisam de transação
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var _ Queryer = (*Connection)(nil)
