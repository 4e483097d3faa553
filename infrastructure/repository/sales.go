// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Códigos do postgres para tabela e coluna inexistentes
const (
	pqUndefinedTable  = "42P01"
	pqUndefinedColumn = "42703"
)

type SalesRepository interface {
	Load(ctx context.Context) ([]domain.SalesRecord, error)
	Source() string
}

type salesRepository struct {
	conn  database.Queryer
	table string
}

func NewSalesRepository(conn database.Queryer, table string) SalesRepository {
	return &salesRepository{
		conn:  conn,
		table: table,
	}
}

func (r *salesRepository) Source() string {
	return r.table
}

// Load lê todas as vendas da tabela analítica
func (r *salesRepository) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(domain.Columns...).
		From(r.table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, domain.NewDataSourceError(domain.ErrSchemaMismatch, domain.SourceDatabase, r.table, "erro ao construir a query").
			WithCause(err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify(err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	line := 0
	for rows.Next() {
		line++
		record, err := r.scanSale(rows)
		if err != nil {
			return nil, domain.NewDataSourceError(domain.ErrMalformedRecord, domain.SourceDatabase, r.table, fmt.Sprintf("linha %d", line)).
				WithCause(err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, r.classify(errors.Wrap(err, "erro durante a iteração de linhas"))
	}

	return records, nil
}

func (r *salesRepository) scanSale(rows *sql.Rows) (*domain.SalesRecord, error) {
	var (
		rawDate any
		amount  decimal.NullDecimal
		record  domain.SalesRecord
	)

	err := rows.Scan(
		&rawDate,
		&record.Store,
		&record.Seller,
		&record.Product,
		&amount,
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear venda")
	}

	record.Store = domain.NormalizeStore(record.Store)

	record.SaleDate, err = toDate(rawDate)
	if err != nil {
		return nil, err
	}

	if !amount.Valid {
		return nil, errors.New("valor nulo")
	}
	record.Amount = amount.Decimal

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return &record, nil
}

// classify separa erros de esquema (tabela/coluna inexistente) de erros de conexão
func (r *salesRepository) classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqUndefinedTable || pqErr.Code == pqUndefinedColumn {
			return domain.NewDataSourceError(domain.ErrSchemaMismatch, domain.SourceDatabase, r.table, string(pqErr.Code)).
				WithCause(err)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column") {
		return domain.NewDataSourceError(domain.ErrSchemaMismatch, domain.SourceDatabase, r.table, "").
			WithCause(err)
	}

	return domain.NewDataSourceError(domain.ErrSourceUnreachable, domain.SourceDatabase, r.table, "").
		WithCause(err)
}

func toDate(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return utils.ParseSaleDate(v)
	case []byte:
		return utils.ParseSaleDate(string(v))
	case nil:
		return time.Time{}, errors.New("data da venda nula")
	default:
		return time.Time{}, errors.Errorf("tipo inesperado para data da venda: %T", value)
	}
}
