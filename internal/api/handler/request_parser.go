package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Parâmetros de consulta aceitos pelos endpoints de leitura
const (
	paramRegion     = "region"
	paramYear       = "year"
	paramSellers    = "sellers"
	paramProducts   = "products"
	paramStores     = "stores"
	paramMinAmount  = "min_amount"
	paramMaxAmount  = "max_amount"
	paramStartDate  = "start_date"
	paramEndDate    = "end_date"
	paramTopSellers = "top_sellers"
	paramColumns    = "columns"
	paramFilename   = "filename"
)

// parseFilters monta o FilterState a partir da query string. Parâmetros ausentes mantêm o padrão.
func parseFilters(r *http.Request) (domain.FilterState, error) {
	query := r.URL.Query()
	filters := domain.NewFilterState()

	if region := strings.TrimSpace(query.Get(paramRegion)); region != "" {
		filters.Region = domain.Region(region)
	}

	var err error
	if filters.Year, err = intParam(query, paramYear); err != nil {
		return filters, err
	}

	filters.Sellers = listParam(query, paramSellers)
	filters.Products = listParam(query, paramProducts)
	filters.Stores = listParam(query, paramStores)

	if filters.MinAmount, err = decimalParam(query, paramMinAmount); err != nil {
		return filters, err
	}
	if filters.MaxAmount, err = decimalParam(query, paramMaxAmount); err != nil {
		return filters, err
	}

	if filters.StartDate, err = utils.ParseDate(strings.TrimSpace(query.Get(paramStartDate))); err != nil {
		return filters, invalidParam(paramStartDate, "use o formato AAAA-MM-DD")
	}
	if filters.EndDate, err = utils.ParseDate(strings.TrimSpace(query.Get(paramEndDate))); err != nil {
		return filters, invalidParam(paramEndDate, "use o formato AAAA-MM-DD")
	}

	topSellers, err := intParam(query, paramTopSellers)
	if err != nil {
		return filters, err
	}
	if topSellers != 0 {
		filters.TopSellers = topSellers
	}

	// columns presente e vazio significa nenhuma coluna selecionada
	if _, ok := query[paramColumns]; ok {
		filters.Columns = listParam(query, paramColumns)
	}

	return filters, nil
}

// listParam aceita valores repetidos e separados por vírgula
func listParam(query url.Values, name string) []string {
	values := make([]string, 0)
	for _, raw := range query[name] {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				values = append(values, value)
			}
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func intParam(query url.Values, name string) (int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, fmt.Sprintf("número inteiro esperado, recebido %q", raw))
	}
	return value, nil
}

func decimalParam(query url.Values, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return nil, invalidParam(name, fmt.Sprintf("número esperado, recebido %q", raw))
	}
	return &value, nil
}

func invalidParam(name, details string) error {
	return domain.NewFilterError(domain.ErrInvalidFilter, name, details)
}
