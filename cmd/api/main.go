package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/source/csvfile"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader, closeSource := newLoader(ctx, cfg)
	defer closeSource()

	datasetService := loading.NewService(loader)

	// Carga inicial; falhas não impedem a subida, a próxima requisição tenta de novo
	if _, err := datasetService.Records(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar o dataset na inicialização")
	}

	refreshService := scheduler.NewDatasetRefreshService(datasetService, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	authenticator := authenticating.NewService(cfg.Auth)
	if cfg.Auth.Secret == "" || cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("AUTH_SECRET ou ADMIN_PASSWORD_HASH não definidos, rotas administrativas ficarão indisponíveis")
	}

	server, err := api.New(cfg, api.Services{
		Dataset:       datasetService,
		Dashboard:     dashboarding.NewService(datasetService),
		Exporter:      exporting.NewService(),
		Authenticator: authenticator,
		Refresher:     refreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newLoader escolhe a fonte do dataset conforme DATA_SOURCE
func newLoader(ctx context.Context, cfg *config.Config) (loading.Loader, func()) {
	if cfg.Dataset.Source == config.DataSourceCSV {
		logrus.WithField("file", cfg.Dataset.File).Info("Usando arquivo CSV como fonte de dados")
		return csvfile.NewLoader(cfg.Dataset.File), func() {}
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Database.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"driver": cfg.Database.Driver,
		"table":  cfg.Dataset.Table,
	}).Info("Conexão com o banco de dados estabelecida com sucesso")

	return repository.NewSalesRepository(conn, cfg.Dataset.Table), func() { conn.Close() }
}
