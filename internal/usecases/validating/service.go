// Package validating classifica registros de venda contra as regras de
// qualidade de dados, sem efeitos colaterais
package validating

import (
	"unicode"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Classification é o resultado da avaliação de um registro. Quando Valid é
// falso, Reason identifica a primeira regra violada
type Classification struct {
	Valid  bool
	Reason domain.RejectionReason
}

type Validator interface {
	Classify(record domain.SalesRecord) Classification
}

type Service struct{}

func NewService() Validator {
	return &Service{}
}

// Classify aplica as regras na ordem de precedência fixa: cliente ausente,
// medidas não positivas, timestamp inválido e código de estoque inválido.
// A função é total: nenhuma entrada provoca erro ou panic
func (s *Service) Classify(record domain.SalesRecord) Classification {
	if record.CustomerID == "" {
		return rejected(domain.ReasonMissingCustomerID)
	}

	if record.Quantity <= 0 || record.UnitPrice <= 0 {
		return rejected(domain.ReasonNonPositiveMeasure)
	}

	if !validTimestamp(record) {
		return rejected(domain.ReasonInvalidTimestamp)
	}

	if isAllAlpha(record.StockCode) {
		return rejected(domain.ReasonInvalidStockCode)
	}

	return Classification{Valid: true}
}

func rejected(reason domain.RejectionReason) Classification {
	return Classification{Valid: false, Reason: reason}
}

// validTimestamp exige um valor interpretado e rejeita textos que começam
// com letra (marcadores como "Unknown" no dump original)
func validTimestamp(record domain.SalesRecord) bool {
	if record.RawInvoiceTimestamp != "" {
		first := []rune(record.RawInvoiceTimestamp)[0]
		if unicode.IsLetter(first) {
			return false
		}
	}

	return !record.InvoiceTimestamp.IsZero()
}

// isAllAlpha identifica códigos de estoque compostos só por letras, que o
// dump original usa para entradas promocionais e de teste
func isAllAlpha(code string) bool {
	if code == "" {
		return false
	}

	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
