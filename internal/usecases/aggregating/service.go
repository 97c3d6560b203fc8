// Package aggregating calcula as visões agregadas (rollups) sobre o
// conjunto limpo de registros de venda
package aggregating

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Janela da média móvel, em dias presentes na série
const movingAverageWindow = 7

// Cortes de dense rank retidos no top de clientes por país
const topCustomerRankLimit = 3

type Aggregator interface {
	Aggregate(records []domain.SalesRecord) *domain.RollupSet
}

type Service struct{}

func NewService() Aggregator {
	return &Service{}
}

// dailyPoint mantém a receita diária sem arredondamento; o arredondamento
// acontece só na montagem das linhas de saída
type dailyPoint struct {
	date    string
	revenue float64
}

// countryAccumulator acumula as medidas de um país em uma única passada
type countryAccumulator struct {
	totalRevenue float64
	lineCount    int
	byCustomer   map[string]float64
}

// Aggregate computa todas as visões do lote. As visões derivadas são
// independentes entre si e são calculadas concorrentemente; cada goroutine
// escreve apenas no seu próprio campo do resultado
func (s *Service) Aggregate(records []domain.SalesRecord) *domain.RollupSet {
	set := domain.EmptyRollupSet()
	if len(records) == 0 {
		return set
	}

	daily := dailySeries(records)
	countries := accumulateCountries(records)

	set.DailyRevenue = make([]domain.DailyRevenueRow, len(daily))
	for i, point := range daily {
		set.DailyRevenue[i] = domain.DailyRevenueRow{
			Date:    point.date,
			Revenue: utils.RoundWithTwoDecimalPlace(point.revenue),
		}
	}

	var g errgroup.Group

	g.Go(func() error {
		set.DayOverDayGrowth = dayOverDayGrowth(daily)
		return nil
	})

	g.Go(func() error {
		set.CumulativeRevenue = cumulativeRevenue(daily)
		return nil
	})

	g.Go(func() error {
		set.SevenDayMovingAverage = movingAverage(daily)
		return nil
	})

	g.Go(func() error {
		set.CountrySummary = countrySummary(countries)
		return nil
	})

	g.Go(func() error {
		set.CountryContribution = countryContribution(countries)
		return nil
	})

	g.Go(func() error {
		set.TopCustomersByCountry = topCustomersByCountry(countries)
		return nil
	})

	// Nenhum rollup retorna erro; o Wait apenas sincroniza o fan-out
	_ = g.Wait()

	return set
}

// dailySeries agrega a receita por data de calendário, ordenada ascendente
func dailySeries(records []domain.SalesRecord) []dailyPoint {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.InvoiceDate()] += record.Revenue()
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]dailyPoint, len(dates))
	for i, date := range dates {
		series[i] = dailyPoint{date: date, revenue: totals[date]}
	}

	return series
}

// accumulateCountries agrega receita, linhas e clientes por país em uma
// passada. Registros sem país ficam fora das visões por país
func accumulateCountries(records []domain.SalesRecord) map[string]*countryAccumulator {
	countries := make(map[string]*countryAccumulator)
	for _, record := range records {
		if record.Country == nil || *record.Country == "" {
			continue
		}

		acc, ok := countries[*record.Country]
		if !ok {
			acc = &countryAccumulator{byCustomer: make(map[string]float64)}
			countries[*record.Country] = acc
		}

		revenue := record.Revenue()
		acc.totalRevenue += revenue
		acc.lineCount++
		acc.byCustomer[record.CustomerID] += revenue
	}

	return countries
}

// dayOverDayGrowth compara cada dia com o dia presente imediatamente
// anterior na série ordenada (lacunas de calendário não são interpoladas).
// O primeiro dia e divisões por zero resultam em percentual ausente
func dayOverDayGrowth(daily []dailyPoint) []domain.DailyGrowthRow {
	rows := make([]domain.DailyGrowthRow, len(daily))
	for i, point := range daily {
		row := domain.DailyGrowthRow{
			Date:    point.date,
			Revenue: utils.RoundWithTwoDecimalPlace(point.revenue),
		}

		if i > 0 {
			previous := daily[i-1].revenue
			if previous != 0 {
				growth := utils.RoundWithTwoDecimalPlace((point.revenue - previous) / previous * 100)
				row.GrowthPct = &growth
			}
		}

		rows[i] = row
	}

	return rows
}

// cumulativeRevenue calcula a soma corrente da receita diária
func cumulativeRevenue(daily []dailyPoint) []domain.CumulativeRevenueRow {
	rows := make([]domain.CumulativeRevenueRow, len(daily))

	running := 0.0
	for i, point := range daily {
		running += point.revenue
		rows[i] = domain.CumulativeRevenueRow{
			Date:       point.date,
			Revenue:    utils.RoundWithTwoDecimalPlace(point.revenue),
			Cumulative: utils.RoundWithTwoDecimalPlace(running),
		}
	}

	return rows
}

// movingAverage calcula a média dos até 7 dias presentes terminando em cada
// dia da série; janelas parciais no início usam os dias disponíveis
func movingAverage(daily []dailyPoint) []domain.MovingAverageRow {
	rows := make([]domain.MovingAverageRow, len(daily))
	for i, point := range daily {
		start := i - movingAverageWindow + 1
		if start < 0 {
			start = 0
		}

		sum := 0.0
		for _, windowPoint := range daily[start : i+1] {
			sum += windowPoint.revenue
		}
		size := float64(i + 1 - start)

		rows[i] = domain.MovingAverageRow{
			Date:          point.date,
			Revenue:       utils.RoundWithTwoDecimalPlace(point.revenue),
			MovingAverage: utils.RoundWithTwoDecimalPlace(sum / size),
		}
	}

	return rows
}

// countrySummary monta o resumo por país com faixa de receita e dense rank
// por receita total decrescente
func countrySummary(countries map[string]*countryAccumulator) []domain.CountrySummaryRow {
	rows := make([]domain.CountrySummaryRow, 0, len(countries))
	for country, acc := range countries {
		rows = append(rows, domain.CountrySummaryRow{
			Country:           country,
			DistinctCustomers: len(acc.byCustomer),
			TotalRevenue:      utils.RoundWithTwoDecimalPlace(acc.totalRevenue),
			AverageRevenue:    utils.RoundWithTwoDecimalPlace(acc.totalRevenue / float64(acc.lineCount)),
			Tier:              tierFor(acc.totalRevenue),
		})
	}

	ranks := denseRanks(rows)
	for i := range rows {
		rows[i].Rank = ranks[rows[i].TotalRevenue]
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Rank != rows[j].Rank {
			return rows[i].Rank < rows[j].Rank
		}
		return rows[i].Country < rows[j].Country
	})

	return rows
}

// tierFor classifica a receita total de um país
func tierFor(total float64) domain.Tier {
	switch {
	case total > domain.TierHighThreshold:
		return domain.TierHigh
	case total >= domain.TierMediumThreshold:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

// denseRanks atribui ranks sem lacunas: valores iguais compartilham o rank e
// o próximo valor distinto recebe o rank anterior + 1
func denseRanks(rows []domain.CountrySummaryRow) map[float64]int {
	totals := make([]float64, 0, len(rows))
	seen := make(map[float64]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.TotalRevenue]; !ok {
			seen[row.TotalRevenue] = struct{}{}
			totals = append(totals, row.TotalRevenue)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(totals)))

	ranks := make(map[float64]int, len(totals))
	for i, total := range totals {
		ranks[total] = i + 1
	}

	return ranks
}

// countryContribution calcula a participação percentual de cada país na
// receita global, ordenada por participação decrescente
func countryContribution(countries map[string]*countryAccumulator) []domain.CountryContributionRow {
	grandTotal := 0.0
	for _, acc := range countries {
		grandTotal += acc.totalRevenue
	}

	rows := make([]domain.CountryContributionRow, 0, len(countries))
	for country, acc := range countries {
		row := domain.CountryContributionRow{
			Country:      country,
			TotalRevenue: utils.RoundWithTwoDecimalPlace(acc.totalRevenue),
		}

		if grandTotal != 0 {
			row.ContributionPct = utils.RoundWithTwoDecimalPlace(acc.totalRevenue / grandTotal * 100)
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRevenue != rows[j].TotalRevenue {
			return rows[i].TotalRevenue > rows[j].TotalRevenue
		}
		return rows[i].Country < rows[j].Country
	})

	return rows
}

// topCustomersByCountry faz o dense rank dos clientes de cada país por
// receita decrescente e retém os ranks 1 a 3; empates na fronteira do rank 3
// entram todos
func topCustomersByCountry(countries map[string]*countryAccumulator) []domain.TopCustomerRow {
	rows := make([]domain.TopCustomerRow, 0)

	for country, acc := range countries {
		totals := make([]float64, 0, len(acc.byCustomer))
		seen := make(map[float64]struct{}, len(acc.byCustomer))
		for _, revenue := range acc.byCustomer {
			if _, ok := seen[revenue]; !ok {
				seen[revenue] = struct{}{}
				totals = append(totals, revenue)
			}
		}

		sort.Sort(sort.Reverse(sort.Float64Slice(totals)))

		ranks := make(map[float64]int, len(totals))
		for i, revenue := range totals {
			ranks[revenue] = i + 1
		}

		for customerID, revenue := range acc.byCustomer {
			rank := ranks[revenue]
			if rank > topCustomerRankLimit {
				continue
			}

			rows = append(rows, domain.TopCustomerRow{
				Country:      country,
				CustomerID:   customerID,
				TotalRevenue: utils.RoundWithTwoDecimalPlace(revenue),
				Rank:         rank,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Country != rows[j].Country {
			return rows[i].Country < rows[j].Country
		}
		if rows[i].Rank != rows[j].Rank {
			return rows[i].Rank < rows[j].Rank
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})

	return rows
}
