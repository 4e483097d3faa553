package migration

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	_ "modernc.org/sqlite"
)

func sale(date, store, seller, product, amount string) domain.SalesRecord {
	saleDate, _ := time.Parse(time.DateOnly, date)
	return domain.SalesRecord{
		SaleDate: saleDate,
		Store:    store,
		Seller:   seller,
		Product:  product,
		Amount:   decimal.RequireFromString(amount),
	}
}

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// cada conexão sqlite em memória tem seu próprio banco
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSeeder_ImportIntoSQLite(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)

	seeder, err := NewSeeder(db, config.DriverSQLite, "vendas_analitico")
	require.NoError(t, err)
	require.NoError(t, seeder.CreateTable(ctx))
	require.NoError(t, seeder.CreateTable(ctx))

	records := []domain.SalesRecord{
		sale("2023-01-15", "SP", "Ana", "eletronicos", "1500.00"),
		sale("2023-02-01", "RJ", "Bruno", "moveis", "800.50"),
	}

	inserted, err := seeder.Import(ctx, records, false)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	loaded, err := repository.NewSalesRepository(db, "vendas_analitico").Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i, record := range loaded {
		for _, column := range domain.Columns {
			assert.Equal(t, records[i].Value(column), record.Value(column), column)
		}
	}

	t.Run("Truncate substitui o conteúdo", func(t *testing.T) {
		inserted, err := seeder.Import(ctx, records[:1], true)
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)

		loaded, err := repository.NewSalesRepository(db, "vendas_analitico").Load(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, 1)
	})

	t.Run("Sem truncate acumula", func(t *testing.T) {
		_, err := seeder.Import(ctx, records, false)
		require.NoError(t, err)

		loaded, err := repository.NewSalesRepository(db, "vendas_analitico").Load(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, 3)
	})
}

func TestSeeder_ImportRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seeder, err := NewSeeder(db, config.DriverPostgres, "vendas_analitico")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vendas_analitico").WillReturnResult(sqlmock.NewResult(0, 3))
	prepare := mock.ExpectPrepare(`INSERT INTO vendas_analitico \(data_venda,loja,vendedor,produto,valor\) VALUES \(\$1,\$2,\$3,\$4,\$5\)`)
	prepare.ExpectExec().
		WithArgs("2023-01-15", "SP", "Ana", "eletronicos", "1500.00").
		WillReturnResult(sqlmock.NewResult(0, 1))
	prepare.ExpectExec().
		WithArgs("2023-02-01", "RJ", "Bruno", "moveis", "800.50").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	inserted, err := seeder.Import(context.Background(), []domain.SalesRecord{
		sale("2023-01-15", "SP", "Ana", "eletronicos", "1500.00"),
		sale("2023-02-01", "RJ", "Bruno", "moveis", "800.50"),
	}, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "[2/2]")
	assert.Equal(t, 0, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewSeeder_InvalidTableName(t *testing.T) {
	tests := []string{"", "vendas; DROP TABLE x", "1vendas", "public.vendas.x", "vendas analitico"}

	for _, table := range tests {
		t.Run(table, func(t *testing.T) {
			_, err := NewSeeder(nil, config.DriverPostgres, table)
			assert.ErrorIs(t, err, ErrInvalidTableName)
		})
	}

	_, err := NewSeeder(nil, config.DriverPostgres, "public.vendas_analitico")
	assert.NoError(t, err)
}
