package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	DefaultStem         = "dados"
	ContentType         = "text/csv; charset=utf-8"
	SuccessNotification = "Arquivo baixado com sucesso!"

	extension = ".csv"
)

type Exporter interface {
	// Export serializa a tabela em CSV com o nome <stem>.csv
	Export(ctx context.Context, table *domain.Table, stem string) (*domain.ExportFile, error)
}

type Service struct {
	generateID func() (string, error)
}

func NewService() Exporter {
	return &Service{generateID: utils.GenerateID}
}

func (s *Service) Export(ctx context.Context, table *domain.Table, stem string) (*domain.ExportFile, error) {
	filename, err := Filename(stem)
	if err != nil {
		return nil, err
	}

	if table == nil || len(table.Columns) == 0 {
		return nil, domain.NewFilterError(domain.ErrNoColumns, "columns", "selecione ao menos uma coluna")
	}

	content, err := encode(table)
	if err != nil {
		return nil, &domain.ExportError{Err: err, Filename: filename}
	}

	id, err := s.generateID()
	if err != nil {
		return nil, &domain.ExportError{Err: fmt.Errorf("erro ao gerar id da exportação: %w", err), Filename: filename}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"filename":  filename,
		"records":   len(table.Rows),
		"export_id": id,
	}).Info("Exportação gerada")

	return &domain.ExportFile{
		ID:          id,
		Filename:    filename,
		ContentType: ContentType,
		Rows:        len(table.Rows),
		Content:     content,
	}, nil
}

// Filename monta o nome do arquivo a partir do nome informado pelo usuário
func Filename(stem string) (string, error) {
	stem = strings.TrimSpace(stem)
	if strings.EqualFold(stem, extension) {
		stem = ""
	}
	if len(stem) > len(extension) && strings.EqualFold(stem[len(stem)-len(extension):], extension) {
		stem = strings.TrimSpace(stem[:len(stem)-len(extension)])
	}

	if strings.ContainsAny(stem, `/\`) || stem == "." || stem == ".." {
		return "", domain.NewFilterError(domain.ErrInvalidFilter, "filename", fmt.Sprintf("nome de arquivo inválido %q", stem))
	}

	if stem == "" {
		stem = DefaultStem
	}

	return stem + extension, nil
}

func encode(table *domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Columns); err != nil {
		return nil, err
	}
	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return nil, fmt.Errorf("linha %d tem %d colunas, esperado %d", i+1, len(row), len(table.Columns))
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
