package handler

import (
	"mime"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	headerNotification = "X-Notification"
	headerExportID     = "X-Export-ID"
)

// GetDashboard retorna o estado de renderização do dashboard para os filtros da query
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		dashboard, err := service.Dashboard(r.Context(), filters)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// GetSales retorna a tabela de dados brutos filtrada
func GetSales(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		table, err := service.RawData(r.Context(), filters)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, table)
	}
}

// ExportSales baixa a tabela filtrada como CSV
func ExportSales(service dashboarding.Dashboarder, exporter exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// valida o nome antes de ler o dataset
		if _, err := exporting.Filename(r.URL.Query().Get(paramFilename)); err != nil {
			writeError(w, r, err)
			return
		}

		table, err := service.RawData(r.Context(), filters)
		if err != nil {
			writeError(w, r, err)
			return
		}

		file, err := exporter.Export(r.Context(), table, r.URL.Query().Get(paramFilename))
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
		w.Header().Set(headerNotification, exporting.SuccessNotification)
		w.Header().Set(headerExportID, file.ID)
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(file.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("filename", file.Filename).Error("Erro ao enviar arquivo")
		}
	}
}

// GetFilterOptions lista os valores disponíveis para os filtros
func GetFilterOptions(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.Options(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}
