package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	_ "modernc.org/sqlite"
)

// Queryer é o subconjunto de *sql.DB usado pelos repositórios de leitura
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type Connection struct {
	*sql.DB
	Driver string
}

// NewConnection abre a conexão com o driver configurado (postgres ou sqlite) e testa com ping
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	driverName, err := sqlDriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db, Driver: cfg.Driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("database: driver não suportado: %q", driver)
	}
}
