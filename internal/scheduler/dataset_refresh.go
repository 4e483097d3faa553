package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga do dataset
type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService recarrega periodicamente o dataset memorizado
type DatasetRefreshService struct {
	scheduler            *gocron.Scheduler
	config               DatasetRefreshConfig
	dataset              loading.DatasetProvider
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
	lastRefreshRecords   int
	lastRefreshError     string
}

func NewDatasetRefreshService(dataset loading.DatasetProvider, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		dataset:   dataset,
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RefreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset relê a fonte e substitui o dataset memorizado. Execuções simultâneas são ignoradas.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	if !s.begin() {
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return nil
	}

	return s.run(ctx)
}

// run executa a recarga; quem chama já reservou a execução com begin
func (s *DatasetRefreshService) run(ctx context.Context) error {
	startTime := time.Now()
	records, err := s.dataset.Refresh(ctx)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshEndedAt = time.Now()
	if err != nil {
		s.lastRefreshError = err.Error()
	} else {
		s.lastRefreshError = ""
		s.lastRefreshRecords = len(records)
	}
	s.refreshMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o dataset")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"records":  len(records),
	}).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualRefresh inicia uma recarga em segundo plano. Retorna false se já houver uma em andamento.
func (s *DatasetRefreshService) TriggerManualRefresh() bool {
	if !s.begin() {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go s.run(context.Background())

	return true
}

// GetStatus retorna o status atual da recarga
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	status := map[string]any{
		"refresh_running":           s.refreshRunning,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_enabled":           s.config.Enabled,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshEndedAt,
		"last_refresh_records":      s.lastRefreshRecords,
	}
	if s.lastRefreshError != "" {
		status["last_refresh_error"] = s.lastRefreshError
	}

	return status
}

func (s *DatasetRefreshService) begin() bool {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		return false
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	return true
}
