package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia uma resposta JSON com o status 200
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta JSON")
	}
}

// GetDailyRevenue retorna a receita agregada por dia
func GetDailyRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.DailyRevenue())
	}
}

// GetDayOverDayGrowth retorna o crescimento dia-a-dia da receita
func GetDayOverDayGrowth(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.DayOverDayGrowth())
	}
}

// GetCumulativeRevenue retorna a receita acumulada por dia
func GetCumulativeRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.CumulativeRevenue())
	}
}

// GetSevenDayMovingAverage retorna a média móvel de 7 dias da receita
func GetSevenDayMovingAverage(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.SevenDayMovingAverage())
	}
}

// GetCountrySummary retorna o resumo de vendas por país
func GetCountrySummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.CountrySummary())
	}
}

// GetCountryContribution retorna a participação de cada país na receita global
func GetCountryContribution(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.CountryContribution())
	}
}

// GetTopCustomersByCountry retorna os melhores clientes de cada país
func GetTopCustomersByCountry(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.TopCustomersByCountry())
	}
}

// GetCountrySales retorna o resumo de vendas de um único país
func GetCountrySales(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if country == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do país não informado", nil)
			return
		}

		row, found := service.CountrySales(country)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrCountryNotFound, "País não encontrado no lote corrente", nil)
			return
		}

		writeJSON(w, row)
	}
}

// GetQualitySummary retorna a atribuição de descartes do último lote
func GetQualitySummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quality := service.Quality()
		if quality == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoBatchPublished, "Nenhum lote processado ainda", nil)
			return
		}

		writeJSON(w, quality)
	}
}
