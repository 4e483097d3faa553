package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sampleTable() *domain.Table {
	return &domain.Table{
		Columns: []string{domain.ColumnSaleDate, domain.ColumnProduct, domain.ColumnAmount},
		Rows: [][]string{
			{"2023-01-15", "livros", "60.00"},
			{"2023-02-01", "mesa, cadeira", "1200.50"},
		},
		Total: 2,
	}
}

func TestService_Export(t *testing.T) {
	service := NewService()

	file, err := service.Export(context.Background(), sampleTable(), "relatorio")
	require.NoError(t, err)

	assert.Equal(t, "relatorio.csv", file.Filename)
	assert.Equal(t, ContentType, file.ContentType)
	assert.Equal(t, 2, file.Rows)
	assert.Len(t, file.ID, 8)

	rows, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"data_venda", "produto", "valor"},
		{"2023-01-15", "livros", "60.00"},
		{"2023-02-01", "mesa, cadeira", "1200.50"},
	}, rows)
}

func TestService_ExportEmptyTable(t *testing.T) {
	table := &domain.Table{Columns: []string{domain.ColumnStore}}

	file, err := NewService().Export(context.Background(), table, "")
	require.NoError(t, err)

	assert.Equal(t, "dados.csv", file.Filename)
	assert.Equal(t, "loja\n", string(file.Content))
}

func TestService_ExportErrors(t *testing.T) {
	t.Run("Linha com colunas a menos", func(t *testing.T) {
		table := &domain.Table{
			Columns: []string{domain.ColumnStore, domain.ColumnAmount},
			Rows:    [][]string{{"SP"}},
		}

		_, err := NewService().Export(context.Background(), table, "vendas")
		require.Error(t, err)

		var exportErr *domain.ExportError
		require.ErrorAs(t, err, &exportErr)
		assert.Equal(t, "vendas.csv", exportErr.Filename)
	})

	t.Run("Falha ao gerar id", func(t *testing.T) {
		service := &Service{generateID: func() (string, error) { return "", errors.New("sem entropia") }}

		_, err := service.Export(context.Background(), sampleTable(), "vendas")

		var exportErr *domain.ExportError
		assert.ErrorAs(t, err, &exportErr)
	})

	t.Run("Sem colunas", func(t *testing.T) {
		_, err := NewService().Export(context.Background(), &domain.Table{}, "vendas")
		assert.ErrorIs(t, err, domain.ErrNoColumns)
	})

	t.Run("Nome com separador", func(t *testing.T) {
		_, err := NewService().Export(context.Background(), sampleTable(), "../segredo")
		assert.ErrorIs(t, err, domain.ErrInvalidFilter)
	})
}

func TestFilename(t *testing.T) {
	tests := []struct {
		stem     string
		expected string
		wantErr  bool
	}{
		{stem: "vendas", expected: "vendas.csv"},
		{stem: "  vendas 2023  ", expected: "vendas 2023.csv"},
		{stem: "vendas.csv", expected: "vendas.csv"},
		{stem: "vendas.CSV", expected: "vendas.csv"},
		{stem: "vendas.xlsx", expected: "vendas.xlsx.csv"},
		{stem: "", expected: "dados.csv"},
		{stem: "   ", expected: "dados.csv"},
		{stem: ".csv", expected: "dados.csv"},
		{stem: "pasta/vendas", wantErr: true},
		{stem: `pasta\vendas`, wantErr: true},
		{stem: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			filename, err := Filename(tt.stem)
			if tt.wantErr {
				var filterErr *domain.FilterError
				require.ErrorAs(t, err, &filterErr)
				assert.Equal(t, "filename", filterErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filename)
		})
	}
}
