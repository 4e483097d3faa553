package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/source/csvfile"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	file := flag.String("file", cfg.Dataset.File, "arquivo CSV com as vendas")
	truncate := flag.Bool("truncate", false, "esvazia a tabela antes de importar")
	flag.Parse()

	ctx := context.Background()
	startTime := time.Now()

	records, err := csvfile.NewLoader(*file).Load(ctx)
	if err != nil {
		logrus.WithError(err).WithField("file", *file).Fatal("Erro ao ler o arquivo de vendas")
	}
	logrus.Infof("Total de %d vendas lidas de %s", len(records), *file)

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Database.Driver).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	seeder, err := migration.NewSeeder(conn.DB, cfg.Database.Driver, cfg.Dataset.Table)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := seeder.CreateTable(ctx); err != nil {
		logrus.Fatal(err)
	}

	inserted, err := seeder.Import(ctx, records, *truncate)
	if err != nil {
		logrus.WithError(err).Fatal("Importação revertida")
	}

	logrus.Infof("Carga concluída em %v: %d vendas em %s", time.Since(startTime), inserted, cfg.Dataset.Table)
}
