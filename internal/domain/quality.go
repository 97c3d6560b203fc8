package domain

import "time"

// RejectionReason identifica a regra de validação que rejeitou um registro
type RejectionReason string

const (
	ReasonMissingCustomerID  RejectionReason = "MissingCustomerId"
	ReasonNonPositiveMeasure RejectionReason = "NonPositiveMeasure"
	ReasonInvalidTimestamp   RejectionReason = "InvalidTimestamp"
	ReasonInvalidStockCode   RejectionReason = "InvalidStockCode"
)

// QualitySummary acumula a atribuição de descartes de um lote: quantos
// registros caíram em cada regra, quantos eram duplicados e quantas linhas
// o loader não conseguiu interpretar
type QualitySummary struct {
	TotalRecords       int                     `json:"total_records"`
	ValidRecords       int                     `json:"valid_records"`
	MalformedRecords   int                     `json:"malformed_records"`
	DuplicatesRemoved  int                     `json:"duplicates_removed"`
	RejectionsByReason map[RejectionReason]int `json:"rejections_by_reason"`
}

// NewQualitySummary cria um sumário zerado com o mapa de motivos inicializado
func NewQualitySummary() *QualitySummary {
	return &QualitySummary{
		RejectionsByReason: make(map[RejectionReason]int),
	}
}

// TotalRejected retorna o total de registros rejeitados por validação
func (q *QualitySummary) TotalRejected() int {
	total := 0
	for _, count := range q.RejectionsByReason {
		total += count
	}
	return total
}

// BatchResult descreve uma execução completa do pipeline
type BatchResult struct {
	BatchID     string    `json:"batch_id"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	RecordsIn   int       `json:"records_in"`
	RecordsOut  int       `json:"records_out"`
}
