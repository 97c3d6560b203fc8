// Package cleaning produz o conjunto canônico de registros de um lote:
// filtra os inválidos e remove duplicatas preservando a primeira ocorrência
package cleaning

import (
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/validating"
)

type Cleaner interface {
	Clean(records []domain.SalesRecord) ([]domain.SalesRecord, *domain.QualitySummary)
}

type Service struct {
	validator validating.Validator
}

func NewService(validator validating.Validator) Cleaner {
	return &Service{validator: validator}
}

// Clean retorna os registros sobreviventes na ordem relativa original e o
// sumário de qualidade com a atribuição de cada descarte. A operação é
// idempotente: aplicá-la sobre a própria saída não remove mais nada
func (s *Service) Clean(records []domain.SalesRecord) ([]domain.SalesRecord, *domain.QualitySummary) {
	summary := domain.NewQualitySummary()
	summary.TotalRecords = len(records)

	cleaned := make([]domain.SalesRecord, 0, len(records))
	seen := make(map[xxh3.Uint128]struct{}, len(records))

	for _, record := range records {
		classification := s.validator.Classify(record)
		if !classification.Valid {
			summary.RejectionsByReason[classification.Reason]++
			continue
		}

		key := duplicateKey(record)
		if _, exists := seen[key]; exists {
			summary.DuplicatesRemoved++
			continue
		}

		seen[key] = struct{}{}
		cleaned = append(cleaned, record)
	}

	summary.ValidRecords = len(cleaned)

	return cleaned, summary
}

// duplicateKey calcula o hash da 5-tupla (invoiceId, stockCode, customerId,
// invoiceTimestamp, quantity). O texto original do timestamp entra na chave
// quando disponível, espelhando a igualdade sobre a coluna da fonte
func duplicateKey(record domain.SalesRecord) xxh3.Uint128 {
	timestamp := record.RawInvoiceTimestamp
	if timestamp == "" {
		timestamp = record.InvoiceTimestamp.Format(time.RFC3339)
	}

	var sb strings.Builder
	sb.WriteString(record.InvoiceID)
	sb.WriteByte(0x1f)
	sb.WriteString(record.StockCode)
	sb.WriteByte(0x1f)
	sb.WriteString(record.CustomerID)
	sb.WriteByte(0x1f)
	sb.WriteString(timestamp)
	sb.WriteByte(0x1f)
	sb.WriteString(strconv.Itoa(record.Quantity))

	return xxh3.Hash128([]byte(sb.String()))
}
