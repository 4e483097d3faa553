package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

// DatasetRefresher é a parte do agendador usada pelos endpoints de manutenção
type DatasetRefresher interface {
	TriggerManualRefresh() bool
	GetStatus() map[string]any
}

type DatasetStatusResponse struct {
	Cache   any            `json:"cache"`
	Refresh map[string]any `json:"refresh"`
}

// GetDatasetStatus retorna o estado do cache e da recarga agendada
func GetDatasetStatus(dataset loading.DatasetProvider, refresher DatasetRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, DatasetStatusResponse{
			Cache:   dataset.Status(),
			Refresh: refresher.GetStatus(),
		})
	}
}

// ClearDataset descarta o dataset memorizado; a próxima leitura relê a fonte
func ClearDataset(dataset loading.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			logger = logger.WithField("username", claims.Username)
		}
		logger.Info("Limpeza do cache do dataset solicitada")

		dataset.Clear()

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Cache do dataset limpo com sucesso",
		})
	}
}

// RefreshDataset inicia a recarga do dataset em segundo plano
func RefreshDataset(refresher DatasetRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !refresher.TriggerManualRefresh() {
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Recarga do dataset já em andamento",
				"started": false,
			})
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Recarga do dataset iniciada com sucesso",
			"started": true,
		})
	}
}
