// Package migration cria e popula a tabela analítica de vendas a partir de um arquivo CSV
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const progressInterval = 1000

// ErrInvalidTableName é retornado quando o nome da tabela não é um identificador simples
var ErrInvalidTableName = errors.New("nome de tabela inválido")

type Seeder struct {
	db          *sql.DB
	table       string
	placeholder squirrel.PlaceholderFormat
}

func NewSeeder(db *sql.DB, driver, table string) (*Seeder, error) {
	if !config.ValidTableName(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}

	var placeholder squirrel.PlaceholderFormat = squirrel.Dollar
	if driver == config.DriverSQLite {
		placeholder = squirrel.Question
	}

	return &Seeder{
		db:          db,
		table:       table,
		placeholder: placeholder,
	}, nil
}

// CreateTable cria a tabela analítica caso ainda não exista
func (s *Seeder) CreateTable(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	%s DATE NOT NULL,
	%s VARCHAR(2) NOT NULL,
	%s TEXT NOT NULL,
	%s TEXT NOT NULL,
	%s NUMERIC(12,2) NOT NULL
)`, s.table,
		domain.ColumnSaleDate,
		domain.ColumnStore,
		domain.ColumnSeller,
		domain.ColumnProduct,
		domain.ColumnAmount,
	)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return errors.Wrapf(err, "erro ao criar tabela %s", s.table)
	}

	log.ForContext(ctx).WithField("table", s.table).Info("Tabela verificada")
	return nil
}

// Import insere as vendas em uma única transação. Com truncate, a tabela é esvaziada antes.
func (s *Seeder) Import(ctx context.Context, records []domain.SalesRecord, truncate bool) (int, error) {
	logger := log.ForContext(ctx).WithField("table", s.table)
	startTime := time.Now()

	query, _, err := squirrel.
		Insert(s.table).
		Columns(domain.Columns...).
		Values("", "", "", "", "").
		PlaceholderFormat(s.placeholder).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir insert")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao iniciar transação")
	}
	defer tx.Rollback() //nolint:errcheck

	if truncate {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.table); err != nil {
			return 0, errors.Wrapf(err, "erro ao limpar tabela %s", s.table)
		}
		logger.Info("Tabela esvaziada antes da importação")
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao preparar insert")
	}
	defer stmt.Close()

	inserted := 0
	for i, record := range records {
		args := make([]any, 0, len(domain.Columns))
		for _, column := range domain.Columns {
			args = append(args, record.Value(column))
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, errors.Wrapf(err, "erro ao inserir venda [%d/%d]", i+1, len(records))
		}
		inserted++

		if inserted%progressInterval == 0 {
			logger.Infof("Progresso: %d/%d vendas inseridas", inserted, len(records))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "erro ao confirmar transação")
	}

	logger.WithFields(log.Fields{
		"records":     inserted,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Importação concluída")

	return inserted, nil
}
