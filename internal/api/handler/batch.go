package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
)

// GetBatchStatus retorna o estado do agendador e o resultado da última execução
func GetBatchStatus(service *scheduler.BatchRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.Status())
	}
}

// RunBatch dispara manualmente o reprocessamento do lote
func RunBatch(service *scheduler.BatchRefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunBatch")

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"message":"Reprocessamento do lote iniciado"}`))
	}
}
