package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Dimension é um campo (original ou derivado) pelo qual as vendas podem ser agrupadas
type Dimension string

const (
	DimensionStore   Dimension = "store"
	DimensionRegion  Dimension = "region"
	DimensionYear    Dimension = "year"
	DimensionMonth   Dimension = "month"
	DimensionProduct Dimension = "product"
	DimensionSeller  Dimension = "seller"
)

// KeyOf extrai o valor da dimensão de uma venda. Ano e mês são colunas derivadas da data.
func (d Dimension) KeyOf(record SalesRecord) string {
	switch d {
	case DimensionStore:
		return record.Store
	case DimensionRegion:
		region, _ := RegionOf(record.Store)
		return string(region)
	case DimensionYear:
		return strconv.Itoa(record.SaleDate.Year())
	case DimensionMonth:
		return record.SaleDate.Month().String()
	case DimensionProduct:
		return record.Product
	case DimensionSeller:
		return record.Seller
	default:
		return ""
	}
}

// AggregationRow é uma linha efêmera (chave do grupo, soma, contagem)
type AggregationRow struct {
	Keys  []string        `json:"keys"`
	Sum   decimal.Decimal `json:"sum"`
	Count int             `json:"count"`
}

// Key retorna a chave do grupo como texto único
func (r AggregationRow) Key() string {
	return strings.Join(r.Keys, "|")
}

// Aggregate agrupa as vendas pelas dimensões informadas (uma ou um par) somando valores
// e contando registros. As linhas saem na ordem da primeira ocorrência de cada chave.
func Aggregate(records []SalesRecord, dimensions ...Dimension) []AggregationRow {
	index := make(map[string]int)
	rows := make([]AggregationRow, 0)

	for _, record := range records {
		keys := make([]string, len(dimensions))
		for i, dimension := range dimensions {
			keys[i] = dimension.KeyOf(record)
		}
		key := strings.Join(keys, "|")

		i, exists := index[key]
		if !exists {
			i = len(rows)
			index[key] = i
			rows = append(rows, AggregationRow{Keys: keys, Sum: decimal.Zero})
		}

		rows[i].Sum = rows[i].Sum.Add(record.Amount)
		rows[i].Count++
	}

	return rows
}

// Total soma o valor de todas as vendas
func Total(records []SalesRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}

// SortBySum ordena as linhas pela soma. Empates são resolvidos pela chave em ordem crescente.
func SortBySum(rows []AggregationRow, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if cmp := rows[i].Sum.Cmp(rows[j].Sum); cmp != 0 {
			if desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return rows[i].Key() < rows[j].Key()
	})
}

// SortByCount ordena as linhas pela contagem. Empates são resolvidos pela chave em ordem crescente.
func SortByCount(rows []AggregationRow, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			if desc {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Count < rows[j].Count
		}
		return rows[i].Key() < rows[j].Key()
	})
}

// Top trunca as linhas nas n primeiras
func Top(rows []AggregationRow, n int) []AggregationRow {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
