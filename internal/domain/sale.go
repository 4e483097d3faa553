// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Nomes das colunas do dataset de vendas (cabeçalho do CSV e colunas da tabela vendas_analitico)
const (
	ColumnSaleDate = "data_venda"
	ColumnStore    = "loja"
	ColumnSeller   = "vendedor"
	ColumnProduct  = "produto"
	ColumnAmount   = "valor"
)

// Columns lista as colunas na ordem canônica de exibição e exportação
var Columns = []string{
	ColumnSaleDate,
	ColumnStore,
	ColumnSeller,
	ColumnProduct,
	ColumnAmount,
}

// IsColumn indica se o nome informado é uma coluna conhecida do dataset
func IsColumn(name string) bool {
	for _, column := range Columns {
		if column == name {
			return true
		}
	}
	return false
}

// SalesRecord representa uma venda carregada da fonte de dados. É imutável após a carga.
type SalesRecord struct {
	SaleDate time.Time       `json:"data_venda"`
	Store    string          `json:"loja"`
	Seller   string          `json:"vendedor"`
	Product  string          `json:"produto"`
	Amount   decimal.Decimal `json:"valor"`
}

// Validate verifica os invariantes de uma venda
func (r SalesRecord) Validate() error {
	if r.SaleDate.IsZero() {
		return fmt.Errorf("data da venda ausente")
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("valor negativo: %s", r.Amount.StringFixed(2))
	}
	return nil
}

// Value retorna o valor textual de uma coluna, no mesmo formato usado na exportação
func (r SalesRecord) Value(column string) string {
	switch column {
	case ColumnSaleDate:
		return r.SaleDate.Format(time.DateOnly)
	case ColumnStore:
		return r.Store
	case ColumnSeller:
		return r.Seller
	case ColumnProduct:
		return r.Product
	case ColumnAmount:
		return r.Amount.StringFixed(2)
	default:
		return ""
	}
}
