// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	batchRunsTable      = "batch_runs"
	dailyRevenueTable   = "daily_revenue"
	countrySummaryTable = "country_summary"
)

// BatchRepository persiste o resultado de um lote e seus rollups principais.
// A escrita é transacional: ou o lote inteiro entra, ou nada entra
type BatchRepository interface {
	SaveBatch(ctx context.Context, result *domain.BatchResult, rollups *domain.RollupSet) error
}

type batchRepository struct {
	conn *postgres.Connection
}

func NewBatchRepository(conn *postgres.Connection) BatchRepository {
	return &batchRepository{
		conn: conn,
	}
}

func (r *batchRepository) SaveBatch(ctx context.Context, result *domain.BatchResult, rollups *domain.RollupSet) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := r.insertBatchRun(ctx, tx, result); err != nil {
			return err
		}

		if err := r.insertDailyRevenue(ctx, tx, result.BatchID, rollups.DailyRevenue); err != nil {
			return err
		}

		return r.insertCountrySummary(ctx, tx, result.BatchID, rollups.CountrySummary)
	})
}

func (r *batchRepository) insertBatchRun(ctx context.Context, tx *sql.Tx, result *domain.BatchResult) error {
	query, args, err := squirrel.
		Insert(batchRunsTable).
		Columns("batch_id", "started_at", "completed_at", "records_in", "records_out").
		Values(result.BatchID, result.StartedAt, result.CompletedAt, result.RecordsIn, result.RecordsOut).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query do lote: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir o lote: %w", err)
	}

	return nil
}

func (r *batchRepository) insertDailyRevenue(ctx context.Context, tx *sql.Tx, batchID string, rows []domain.DailyRevenueRow) error {
	if len(rows) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(dailyRevenueTable).
		Columns("batch_id", "date", "revenue").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(batchID, row.Date, row.Revenue)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de receita diária: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir a receita diária: %w", err)
	}

	return nil
}

func (r *batchRepository) insertCountrySummary(ctx context.Context, tx *sql.Tx, batchID string, rows []domain.CountrySummaryRow) error {
	if len(rows) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(countrySummaryTable).
		Columns("batch_id", "country", "distinct_customers", "total_revenue", "average_revenue", "tier", "rank").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		builder = builder.Values(batchID, row.Country, row.DistinctCustomers, row.TotalRevenue, row.AverageRevenue, string(row.Tier), row.Rank)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query do resumo por país: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir o resumo por país: %w", err)
	}

	return nil
}
