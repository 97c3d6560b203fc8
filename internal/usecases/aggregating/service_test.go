package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func sale(date string, quantity int, price float64, customerID, country string) domain.SalesRecord {
	ts, _ := time.Parse("2006-01-02", date)
	record := domain.SalesRecord{
		InvoiceID:           "inv-" + date + "-" + customerID,
		StockCode:           "AB12",
		Quantity:            quantity,
		RawInvoiceTimestamp: date,
		InvoiceTimestamp:    ts,
		UnitPrice:           price,
		CustomerID:          customerID,
	}

	if country != "" {
		record.Country = &country
	}

	return record
}

func TestService_Aggregate_LoteVazio(t *testing.T) {
	service := NewService()

	set := service.Aggregate([]domain.SalesRecord{})

	assert.Empty(t, set.DailyRevenue)
	assert.Empty(t, set.DayOverDayGrowth)
	assert.Empty(t, set.CumulativeRevenue)
	assert.Empty(t, set.SevenDayMovingAverage)
	assert.Empty(t, set.CountrySummary)
	assert.Empty(t, set.CountryContribution)
	assert.Empty(t, set.TopCustomersByCountry)
}

func TestService_Aggregate_ReceitaDiaria(t *testing.T) {
	service := NewService()

	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-02", 1, 30.00, "cust1", "UK"),
		sale("2024-01-01", 2, 10.00, "cust1", "UK"),
		sale("2024-01-01", 1, 5.00, "cust2", "UK"),
	})

	require.Len(t, set.DailyRevenue, 2)
	assert.Equal(t, "2024-01-01", set.DailyRevenue[0].Date)
	assert.InDelta(t, 25.00, set.DailyRevenue[0].Revenue, 0.001)
	assert.Equal(t, "2024-01-02", set.DailyRevenue[1].Date)
	assert.InDelta(t, 30.00, set.DailyRevenue[1].Revenue, 0.001)
}

func TestService_Aggregate_CrescimentoDiaADia(t *testing.T) {
	service := NewService()

	// Receitas 100, 150 e 300, com lacuna de calendário antes do último dia:
	// o "anterior" é o dia presente anterior na série, não o dia de calendário
	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 100.00, "cust1", "UK"),
		sale("2024-01-02", 1, 150.00, "cust1", "UK"),
		sale("2024-01-05", 1, 300.00, "cust1", "UK"),
	})

	require.Len(t, set.DayOverDayGrowth, 3)

	assert.Nil(t, set.DayOverDayGrowth[0].GrowthPct, "primeiro dia não tem anterior")

	require.NotNil(t, set.DayOverDayGrowth[1].GrowthPct)
	assert.InDelta(t, 50.00, *set.DayOverDayGrowth[1].GrowthPct, 0.001)

	require.NotNil(t, set.DayOverDayGrowth[2].GrowthPct)
	assert.InDelta(t, 100.00, *set.DayOverDayGrowth[2].GrowthPct, 0.001)
}

func TestService_Aggregate_CrescimentoComAnteriorZero(t *testing.T) {
	service := NewService()

	// Receita zero no primeiro dia: a razão é indefinida e o percentual
	// do dia seguinte fica ausente em vez de calculado
	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 0, 100.00, "cust1", "UK"),
		sale("2024-01-02", 1, 150.00, "cust1", "UK"),
	})

	require.Len(t, set.DayOverDayGrowth, 2)
	assert.Nil(t, set.DayOverDayGrowth[1].GrowthPct)
}

func TestService_Aggregate_ReceitaAcumulada(t *testing.T) {
	service := NewService()

	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 100.00, "cust1", "UK"),
		sale("2024-01-02", 1, 150.00, "cust1", "UK"),
		sale("2024-01-03", 1, 50.00, "cust1", "UK"),
	})

	require.Len(t, set.CumulativeRevenue, 3)
	assert.InDelta(t, 100.00, set.CumulativeRevenue[0].Cumulative, 0.001)
	assert.InDelta(t, 250.00, set.CumulativeRevenue[1].Cumulative, 0.001)
	assert.InDelta(t, 300.00, set.CumulativeRevenue[2].Cumulative, 0.001)
}

func TestService_Aggregate_MediaMovelDeSeteDias(t *testing.T) {
	service := NewService()

	records := []domain.SalesRecord{}
	dates := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08",
	}
	for i, date := range dates {
		records = append(records, sale(date, 1, float64((i+1)*10), "cust1", "UK"))
	}

	set := service.Aggregate(records)

	require.Len(t, set.SevenDayMovingAverage, 8)

	// Janela parcial no início: a média do primeiro dia é a própria receita
	assert.InDelta(t, 10.00, set.SevenDayMovingAverage[0].MovingAverage, 0.001)

	// Segundo dia: média de 10 e 20
	assert.InDelta(t, 15.00, set.SevenDayMovingAverage[1].MovingAverage, 0.001)

	// Sétimo dia: média de 10..70 = 40
	assert.InDelta(t, 40.00, set.SevenDayMovingAverage[6].MovingAverage, 0.001)

	// Oitavo dia: a janela desliza e cobre 20..80 = 50
	assert.InDelta(t, 50.00, set.SevenDayMovingAverage[7].MovingAverage, 0.001)
}

func TestService_Aggregate_ResumoPorPais(t *testing.T) {
	service := NewService()

	// UK: 20000 (High), US: 7000 (Medium), FR: 3000 (Low)
	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 20000.00, "cust-uk", "UK"),
		sale("2024-01-01", 1, 7000.00, "cust-us", "US"),
		sale("2024-01-01", 1, 3000.00, "cust-fr", "FR"),
	})

	require.Len(t, set.CountrySummary, 3)

	uk := set.CountrySummary[0]
	assert.Equal(t, "UK", uk.Country)
	assert.Equal(t, domain.TierHigh, uk.Tier)
	assert.Equal(t, 1, uk.Rank)
	assert.Equal(t, 1, uk.DistinctCustomers)

	us := set.CountrySummary[1]
	assert.Equal(t, "US", us.Country)
	assert.Equal(t, domain.TierMedium, us.Tier)
	assert.Equal(t, 2, us.Rank)

	fr := set.CountrySummary[2]
	assert.Equal(t, "FR", fr.Country)
	assert.Equal(t, domain.TierLow, fr.Tier)
	assert.Equal(t, 3, fr.Rank)
}

func TestService_Aggregate_DenseRankSemLacunas(t *testing.T) {
	service := NewService()

	// Dois países empatados dividem o rank e o próximo valor distinto
	// recebe o rank seguinte, sem pular posições
	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 5000.00, "cust1", "UK"),
		sale("2024-01-01", 1, 5000.00, "cust2", "US"),
		sale("2024-01-01", 1, 1000.00, "cust3", "FR"),
	})

	require.Len(t, set.CountrySummary, 3)
	assert.Equal(t, 1, set.CountrySummary[0].Rank)
	assert.Equal(t, 1, set.CountrySummary[1].Rank)
	assert.Equal(t, 2, set.CountrySummary[2].Rank)
}

func TestService_Aggregate_ContribuicaoPorPais(t *testing.T) {
	service := NewService()

	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 20000.00, "cust-uk", "UK"),
		sale("2024-01-01", 1, 7000.00, "cust-us", "US"),
		sale("2024-01-01", 1, 3000.00, "cust-fr", "FR"),
	})

	require.Len(t, set.CountryContribution, 3)

	assert.Equal(t, "UK", set.CountryContribution[0].Country)
	assert.InDelta(t, 66.67, set.CountryContribution[0].ContributionPct, 0.001)

	assert.Equal(t, "US", set.CountryContribution[1].Country)
	assert.InDelta(t, 23.33, set.CountryContribution[1].ContributionPct, 0.001)

	assert.Equal(t, "FR", set.CountryContribution[2].Country)
	assert.InDelta(t, 10.00, set.CountryContribution[2].ContributionPct, 0.001)
}

func TestService_Aggregate_TopClientesPorPais(t *testing.T) {
	service := NewService()

	// c1 e c2 empatados no rank 1, c3 no rank 2, c4 no rank 3: o dense rank
	// não pula posições, então todos ficam dentro do corte
	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 500.00, "c1", "UK"),
		sale("2024-01-01", 1, 500.00, "c2", "UK"),
		sale("2024-01-01", 1, 300.00, "c3", "UK"),
		sale("2024-01-01", 1, 200.00, "c4", "UK"),
	})

	require.Len(t, set.TopCustomersByCountry, 4)

	assert.Equal(t, "c1", set.TopCustomersByCountry[0].CustomerID)
	assert.Equal(t, 1, set.TopCustomersByCountry[0].Rank)
	assert.Equal(t, "c2", set.TopCustomersByCountry[1].CustomerID)
	assert.Equal(t, 1, set.TopCustomersByCountry[1].Rank)
	assert.Equal(t, "c3", set.TopCustomersByCountry[2].CustomerID)
	assert.Equal(t, 2, set.TopCustomersByCountry[2].Rank)
	assert.Equal(t, "c4", set.TopCustomersByCountry[3].CustomerID)
	assert.Equal(t, 3, set.TopCustomersByCountry[3].Rank)
}

func TestService_Aggregate_TopClientesCorteDoRank(t *testing.T) {
	service := NewService()

	// Quatro valores distintos: o quarto cliente fica fora do corte 1-3
	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 500.00, "c1", "UK"),
		sale("2024-01-01", 1, 400.00, "c2", "UK"),
		sale("2024-01-01", 1, 300.00, "c3", "UK"),
		sale("2024-01-01", 1, 200.00, "c4", "UK"),
	})

	require.Len(t, set.TopCustomersByCountry, 3)
	for _, row := range set.TopCustomersByCountry {
		assert.NotEqual(t, "c4", row.CustomerID)
	}
}

func TestService_Aggregate_PaisAusenteForaDosRollupsPorPais(t *testing.T) {
	service := NewService()

	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 100.00, "cust1", "UK"),
		sale("2024-01-01", 1, 50.00, "cust2", ""),
	})

	// A venda sem país conta na receita diária mas não nos rollups por país
	require.Len(t, set.DailyRevenue, 1)
	assert.InDelta(t, 150.00, set.DailyRevenue[0].Revenue, 0.001)

	require.Len(t, set.CountrySummary, 1)
	assert.Equal(t, "UK", set.CountrySummary[0].Country)
}

func TestService_Aggregate_ClientesDistintosEMediaPorLinha(t *testing.T) {
	service := NewService()

	set := service.Aggregate([]domain.SalesRecord{
		sale("2024-01-01", 1, 100.00, "cust1", "UK"),
		sale("2024-01-02", 1, 200.00, "cust1", "UK"),
		sale("2024-01-03", 1, 300.00, "cust2", "UK"),
	})

	require.Len(t, set.CountrySummary, 1)
	uk := set.CountrySummary[0]
	assert.Equal(t, 2, uk.DistinctCustomers)
	assert.InDelta(t, 600.00, uk.TotalRevenue, 0.001)
	assert.InDelta(t, 200.00, uk.AverageRevenue, 0.001)
}
