package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopSellers = 5
	MinTopSellers     = 2
	MaxTopSellers     = 10
	TopStates         = 5
)

// FilterState reúne todos os filtros selecionados pelo usuário em uma interação.
// Listas vazias e ponteiros nulos significam "sem restrição".
type FilterState struct {
	Region     Region           `json:"region"`
	Year       int              `json:"year,omitempty"` // 0 = todo o período
	Sellers    []string         `json:"sellers,omitempty"`
	Products   []string         `json:"products,omitempty"`
	Stores     []string         `json:"stores,omitempty"`
	MinAmount  *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount  *decimal.Decimal `json:"max_amount,omitempty"`
	StartDate  *time.Time       `json:"start_date,omitempty"`
	EndDate    *time.Time       `json:"end_date,omitempty"`
	TopSellers int              `json:"top_sellers"`
	Columns    []string         `json:"columns"`
}

// NewFilterState retorna o estado padrão: Brasil, todo o período, top 5 vendedores e todas as colunas
func NewFilterState() FilterState {
	columns := make([]string, len(Columns))
	copy(columns, Columns)

	return FilterState{
		Region:     RegionBrasil,
		TopSellers: DefaultTopSellers,
		Columns:    columns,
	}
}

// Validate verifica a consistência dos filtros
func (f FilterState) Validate() error {
	if f.Region != "" {
		if _, ok := ParseRegion(string(f.Region)); !ok {
			return NewFilterError(ErrInvalidFilter, "region", fmt.Sprintf("região desconhecida %q", f.Region))
		}
	}

	if f.Year != 0 && (f.Year < 1900 || f.Year > 9999) {
		return NewFilterError(ErrInvalidFilter, "year", fmt.Sprintf("ano fora do intervalo: %d", f.Year))
	}

	if f.MinAmount != nil && f.MinAmount.IsNegative() {
		return NewFilterError(ErrInvalidRange, "min_amount", "valor mínimo não pode ser negativo")
	}
	if f.MaxAmount != nil && f.MaxAmount.IsNegative() {
		return NewFilterError(ErrInvalidRange, "max_amount", "valor máximo não pode ser negativo")
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		return NewFilterError(ErrInvalidRange, "min_amount", fmt.Sprintf(
			"valor mínimo %s maior que o máximo %s", f.MinAmount.StringFixed(2), f.MaxAmount.StringFixed(2),
		))
	}

	if f.StartDate != nil && f.EndDate != nil && dayOf(*f.StartDate).After(dayOf(*f.EndDate)) {
		return NewFilterError(ErrInvalidRange, "start_date", fmt.Sprintf(
			"data inicial %s posterior à final %s", f.StartDate.Format(time.DateOnly), f.EndDate.Format(time.DateOnly),
		))
	}

	if f.TopSellers != 0 && (f.TopSellers < MinTopSellers || f.TopSellers > MaxTopSellers) {
		return NewFilterError(ErrInvalidFilter, "top_sellers", fmt.Sprintf(
			"quantidade de vendedores deve estar entre %d e %d", MinTopSellers, MaxTopSellers,
		))
	}

	for _, column := range f.Columns {
		if !IsColumn(column) {
			return NewFilterError(ErrInvalidFilter, "columns", fmt.Sprintf("coluna desconhecida %q", column))
		}
	}

	return nil
}

// Apply retorna, na ordem original, as vendas que satisfazem todos os filtros ativos
func (f FilterState) Apply(records []SalesRecord) []SalesRecord {
	region, _ := ParseRegion(string(f.Region))
	sellers := toSet(f.Sellers)
	products := toSet(f.Products)
	stores := toSet(normalizeStores(f.Stores))

	var start, end time.Time
	if f.StartDate != nil {
		start = dayOf(*f.StartDate)
	}
	if f.EndDate != nil {
		end = dayOf(*f.EndDate)
	}

	filtered := make([]SalesRecord, 0, len(records))
	for _, record := range records {
		if region != RegionBrasil {
			if recordRegion, ok := RegionOf(record.Store); !ok || recordRegion != region {
				continue
			}
		}
		if f.Year != 0 && record.SaleDate.Year() != f.Year {
			continue
		}
		if !matches(sellers, record.Seller) || !matches(products, record.Product) || !matches(stores, NormalizeStore(record.Store)) {
			continue
		}
		if f.MinAmount != nil && record.Amount.LessThan(*f.MinAmount) {
			continue
		}
		if f.MaxAmount != nil && record.Amount.GreaterThan(*f.MaxAmount) {
			continue
		}

		day := dayOf(record.SaleDate)
		if f.StartDate != nil && day.Before(start) {
			continue
		}
		if f.EndDate != nil && day.After(end) {
			continue
		}

		filtered = append(filtered, record)
	}

	return filtered
}

// TopSellersOrDefault retorna a quantidade de vendedores do ranking
func (f FilterState) TopSellersOrDefault() int {
	if f.TopSellers == 0 {
		return DefaultTopSellers
	}
	return f.TopSellers
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func normalizeStores(stores []string) []string {
	if len(stores) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(stores))
	for _, store := range stores {
		normalized = append(normalized, NormalizeStore(store))
	}
	return normalized
}

// matches trata conjunto vazio como "sem restrição"
func matches(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
