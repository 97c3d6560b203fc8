// Package reporting expõe as visões de leitura do último lote publicado
package reporting

import (
	"sync"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Reporter é a interface de leitura das visões agregadas. Todos os métodos
// retornam dados do último snapshot publicado; não existe caminho de escrita
// além do Publish feito pelo pipeline
type Reporter interface {
	DailyRevenue() []domain.DailyRevenueRow
	DayOverDayGrowth() []domain.DailyGrowthRow
	CumulativeRevenue() []domain.CumulativeRevenueRow
	SevenDayMovingAverage() []domain.MovingAverageRow
	CountrySummary() []domain.CountrySummaryRow
	CountryContribution() []domain.CountryContributionRow
	TopCustomersByCountry() []domain.TopCustomerRow
	CountrySales(country string) (*domain.CountrySummaryRow, bool)
	Quality() *domain.QualitySummary
	LastBatch() *domain.BatchResult
}

// Publisher é o lado de publicação usado pelo pipeline; a troca de snapshot
// é atômica e nunca expõe um conjunto parcial
type Publisher interface {
	Publish(set *domain.RollupSet, quality *domain.QualitySummary, batch *domain.BatchResult)
}

type Service struct {
	mu        sync.RWMutex
	rollups   *domain.RollupSet
	byCountry map[string]domain.CountrySummaryRow
	quality   *domain.QualitySummary
	lastBatch *domain.BatchResult
}

func NewService() *Service {
	return &Service{
		rollups:   domain.EmptyRollupSet(),
		byCountry: make(map[string]domain.CountrySummaryRow),
	}
}

// Publish troca o snapshot corrente pelo conjunto recém-computado. O índice
// por país é derivado aqui para a consulta pontual CountrySales
func (s *Service) Publish(set *domain.RollupSet, quality *domain.QualitySummary, batch *domain.BatchResult) {
	byCountry := make(map[string]domain.CountrySummaryRow, len(set.CountrySummary))
	for _, row := range set.CountrySummary {
		byCountry[row.Country] = row
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rollups = set
	s.byCountry = byCountry
	s.quality = quality
	s.lastBatch = batch
}

func (s *Service) DailyRevenue() []domain.DailyRevenueRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.DailyRevenue
}

func (s *Service) DayOverDayGrowth() []domain.DailyGrowthRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.DayOverDayGrowth
}

func (s *Service) CumulativeRevenue() []domain.CumulativeRevenueRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.CumulativeRevenue
}

func (s *Service) SevenDayMovingAverage() []domain.MovingAverageRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.SevenDayMovingAverage
}

func (s *Service) CountrySummary() []domain.CountrySummaryRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.CountrySummary
}

func (s *Service) CountryContribution() []domain.CountryContributionRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.CountryContribution
}

func (s *Service) TopCustomersByCountry() []domain.TopCustomerRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollups.TopCustomersByCountry
}

// CountrySales retorna a linha de resumo de um único país, ou ausência
// quando o país não aparece no lote corrente
func (s *Service) CountrySales(country string) (*domain.CountrySummaryRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.byCountry[country]
	if !ok {
		return nil, false
	}

	return &row, true
}

// Quality retorna o sumário de qualidade do último lote, ou nil antes da
// primeira publicação
func (s *Service) Quality() *domain.QualitySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quality
}

// LastBatch retorna os metadados da última execução publicada
func (s *Service) LastBatch() *domain.BatchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastBatch
}
