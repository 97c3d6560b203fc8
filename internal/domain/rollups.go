package domain

// Tier é o rótulo de faixa de receita de um país
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// Limites de receita total que definem a faixa de cada país
const (
	TierHighThreshold   = 10000.0
	TierMediumThreshold = 5000.0
)

// DailyRevenueRow representa a receita agregada de um dia
type DailyRevenueRow struct {
	Date    string  `json:"date"` // Formato yyyy-mm-dd
	Revenue float64 `json:"revenue"`
}

// DailyGrowthRow representa o crescimento dia-a-dia da receita.
// GrowthPct é nulo no primeiro dia da série e quando o dia anterior
// presente teve receita zero (divisão indefinida)
type DailyGrowthRow struct {
	Date      string   `json:"date"`
	Revenue   float64  `json:"revenue"`
	GrowthPct *float64 `json:"growth_pct,omitempty"`
}

// CumulativeRevenueRow representa a soma acumulada da receita diária
type CumulativeRevenueRow struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	Cumulative float64 `json:"cumulative"`
}

// MovingAverageRow representa a média móvel de 7 dias presentes da série
type MovingAverageRow struct {
	Date          string  `json:"date"`
	Revenue       float64 `json:"revenue"`
	MovingAverage float64 `json:"moving_average"`
}

// CountrySummaryRow representa o resumo de vendas de um país
type CountrySummaryRow struct {
	Country           string  `json:"country"`
	DistinctCustomers int     `json:"distinct_customers"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageRevenue    float64 `json:"average_revenue"`
	Tier              Tier    `json:"tier"`
	Rank              int     `json:"rank"` // Dense rank por receita total decrescente
}

// CountryContributionRow representa a participação de um país na receita global
type CountryContributionRow struct {
	Country         string  `json:"country"`
	TotalRevenue    float64 `json:"total_revenue"`
	ContributionPct float64 `json:"contribution_pct"`
}

// TopCustomerRow representa um cliente entre os melhores do seu país
type TopCustomerRow struct {
	Country      string  `json:"country"`
	CustomerID   string  `json:"customer_id"`
	TotalRevenue float64 `json:"total_revenue"`
	Rank         int     `json:"rank"` // Dense rank por receita total decrescente
}

// RollupSet é o conjunto completo de visões agregadas de um lote.
// Depois de publicado nunca é alterado; leitores compartilham o snapshot
type RollupSet struct {
	DailyRevenue          []DailyRevenueRow        `json:"daily_revenue"`
	DayOverDayGrowth      []DailyGrowthRow         `json:"day_over_day_growth"`
	CumulativeRevenue     []CumulativeRevenueRow   `json:"cumulative_revenue"`
	SevenDayMovingAverage []MovingAverageRow       `json:"seven_day_moving_average"`
	CountrySummary        []CountrySummaryRow      `json:"country_summary"`
	CountryContribution   []CountryContributionRow `json:"country_contribution"`
	TopCustomersByCountry []TopCustomerRow         `json:"top_customers_by_country"`
}

// EmptyRollupSet retorna um conjunto vazio de visões, usado para lotes sem
// registros válidos (um lote vazio é entrada válida, não erro)
func EmptyRollupSet() *RollupSet {
	return &RollupSet{
		DailyRevenue:          []DailyRevenueRow{},
		DayOverDayGrowth:      []DailyGrowthRow{},
		CumulativeRevenue:     []CumulativeRevenueRow{},
		SevenDayMovingAverage: []MovingAverageRow{},
		CountrySummary:        []CountrySummaryRow{},
		CountryContribution:   []CountryContributionRow{},
		TopCustomersByCountry: []TopCustomerRow{},
	}
}
