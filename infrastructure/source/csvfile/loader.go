// Package csvfile carrega o dataset de vendas a partir de um arquivo CSV com cabeçalho
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Source() string {
	return l.path
}

// Load lê o arquivo inteiro. A primeira linha é o cabeçalho; a ordem das colunas é livre.
func (l *Loader) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, domain.NewDataSourceError(domain.ErrSourceUnreachable, domain.SourceFile, l.path, "").
			WithCause(err)
	}
	defer file.Close()

	return l.read(ctx, file)
}

func (l *Loader) read(ctx context.Context, r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.NewDataSourceError(domain.ErrSchemaMismatch, domain.SourceFile, l.path, "arquivo vazio")
	}
	if err != nil {
		return nil, domain.NewDataSourceError(domain.ErrSchemaMismatch, domain.SourceFile, l.path, "cabeçalho ilegível").
			WithCause(err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, domain.NewDataSourceError(domain.ErrSchemaMismatch, domain.SourceFile, l.path, err.Error())
	}

	records := make([]domain.SalesRecord, 0)
	line := 1
	for {
		line++
		if err := ctx.Err(); err != nil {
			return nil, domain.NewDataSourceError(domain.ErrSourceUnreachable, domain.SourceFile, l.path, "leitura cancelada").
				WithCause(err)
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewDataSourceError(domain.ErrMalformedRecord, domain.SourceFile, l.path, fmt.Sprintf("linha %d", line)).
				WithCause(err)
		}
		if isBlank(row) {
			continue
		}

		record, err := parseRow(row, index)
		if err != nil {
			return nil, domain.NewDataSourceError(domain.ErrMalformedRecord, domain.SourceFile, l.path, fmt.Sprintf("linha %d", line)).
				WithCause(err)
		}
		records = append(records, record)
	}

	return records, nil
}

// columnIndex mapeia cada coluna obrigatória para sua posição no cabeçalho
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	missing := make([]string, 0)
	for _, column := range domain.Columns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("colunas ausentes: %s", strings.Join(missing, ", "))
	}

	return index, nil
}

func parseRow(row []string, index map[string]int) (domain.SalesRecord, error) {
	cell := func(column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	saleDate, err := utils.ParseSaleDate(cell(domain.ColumnSaleDate))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(err, domain.ColumnSaleDate)
	}

	amount, err := parseAmount(cell(domain.ColumnAmount))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(err, domain.ColumnAmount)
	}

	record := domain.SalesRecord{
		SaleDate: saleDate,
		Store:    domain.NormalizeStore(cell(domain.ColumnStore)),
		Seller:   cell(domain.ColumnSeller),
		Product:  cell(domain.ColumnProduct),
		Amount:   amount,
	}

	if err := record.Validate(); err != nil {
		return domain.SalesRecord{}, err
	}

	return record, nil
}

// parseAmount aceita ponto ou vírgula como separador decimal
func parseAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, errors.New("valor vazio")
	}
	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.Replace(value, ",", ".", 1)
	}
	return decimal.NewFromString(value)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
