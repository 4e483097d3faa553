package handler

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// coder é implementado pelos erros de domínio que carregam um código da API
type coder interface {
	Code() string
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeError traduz erros de domínio para o corpo padronizado. Detalhes de infraestrutura vão só para o log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		filterErr *domain.FilterError
		sourceErr *domain.DataSourceError
		exportErr *domain.ExportError
	)

	switch {
	case errors.As(err, &filterErr):
		logger.Warn("Filtro inválido")
		apiErrors.WriteError(w, filterErr.Code(), filterErr.Error(), map[string]any{
			"field": filterErr.Field,
		})

	case errors.As(err, &sourceErr):
		logger.WithField("source", sourceErr.Source).Error("Erro ao ler a fonte de dados")
		apiErrors.WriteError(w, sourceErr.Code(), fmt.Sprintf("%s: %s", sourceErr.Err.Error(), sourceErr.Source), nil)

	case errors.As(err, &exportErr):
		logger.WithField("filename", exportErr.Filename).Error("Erro ao exportar dados")
		apiErrors.WriteError(w, exportErr.Code(), exportErr.Error(), nil)

	default:
		var coded coder
		if errors.As(err, &coded) {
			logger.Warn("Erro na requisição")
			apiErrors.WriteError(w, coded.Code(), err.Error(), nil)
			return
		}

		logger.Error("Erro interno")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}
