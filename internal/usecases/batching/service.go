// Package batching orquestra uma execução completa do pipeline:
// carga → limpeza → agregação → publicação → persistência opcional
package batching

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics-api/infrastructure/loader"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// BatchRunner executa um lote do início ao fim. Uma execução ou completa e
// publica o snapshot inteiro, ou falha sem publicar nada
type BatchRunner interface {
	Run(ctx context.Context) (*domain.BatchResult, error)
}

type Service struct {
	loader     loader.SalesLoader
	cleaner    cleaning.Cleaner
	aggregator aggregating.Aggregator
	publisher  reporting.Publisher
	batchRepo  repository.BatchRepository
	persist    bool
}

func NewService(
	salesLoader loader.SalesLoader,
	cleaner cleaning.Cleaner,
	aggregator aggregating.Aggregator,
	publisher reporting.Publisher,
	batchRepo repository.BatchRepository,
	persist bool,
) BatchRunner {
	return &Service{
		loader:     salesLoader,
		cleaner:    cleaner,
		aggregator: aggregator,
		publisher:  publisher,
		batchRepo:  batchRepo,
		persist:    persist && batchRepo != nil,
	}
}

// Run processa um lote completo. Um lote vazio é entrada válida e publica
// visões vazias; só a falha de carga aborta a execução
func (s *Service) Run(ctx context.Context) (*domain.BatchResult, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do lote")
	}

	startedAt := time.Now()

	logrus.WithField("batch_id", batchID).Info("Iniciando processamento do lote")

	records, malformed, err := s.loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar os registros de venda")
	}

	cleaned, quality := s.cleaner.Clean(records)
	quality.MalformedRecords = malformed

	rollups := s.aggregator.Aggregate(cleaned)

	result := &domain.BatchResult{
		BatchID:     batchID,
		StartedAt:   startedAt,
		CompletedAt: time.Now(),
		RecordsIn:   len(records) + malformed,
		RecordsOut:  len(cleaned),
	}

	// A publicação é atômica: o Reporter só enxerga o conjunto completo
	s.publisher.Publish(rollups, quality, result)

	logrus.WithFields(logrus.Fields{
		"batch_id":           batchID,
		"records_in":         result.RecordsIn,
		"records_out":        result.RecordsOut,
		"malformed":          malformed,
		"duplicates_removed": quality.DuplicatesRemoved,
		"rejected":           quality.TotalRejected(),
	}).Info("Lote processado e publicado")

	if s.persist {
		if err := s.batchRepo.SaveBatch(ctx, result, rollups); err != nil {
			// A persistência é auxiliar; o lote já foi publicado em memória
			logrus.WithError(err).WithField("batch_id", batchID).Error("Erro ao persistir o lote")
		}
	}

	return result, nil
}
