package loading

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/cache"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/sync/singleflight"
)

const (
	loadKey    = "dataset"
	refreshKey = "refresh"
)

var _ DatasetProvider = (*Service)(nil)

type Service struct {
	loader   Loader
	snapshot *cache.Snapshot[[]domain.SalesRecord]
	group    singleflight.Group
}

func NewService(loader Loader) *Service {
	return &Service{
		loader:   loader,
		snapshot: cache.NewSnapshot[[]domain.SalesRecord](),
	}
}

func (s *Service) Records(ctx context.Context) ([]domain.SalesRecord, error) {
	if records, ok := s.snapshot.Get(); ok {
		return records, nil
	}

	return s.load(ctx, loadKey, false)
}

func (s *Service) Clear() {
	s.snapshot.Clear()
	log.L.WithField("source", s.loader.Source()).Info("Cache do dataset limpo")
}

// Refresh relê a fonte e substitui o dataset memorizado. Em caso de erro o dataset anterior é mantido.
func (s *Service) Refresh(ctx context.Context) ([]domain.SalesRecord, error) {
	return s.load(ctx, refreshKey, true)
}

func (s *Service) Status() domain.DatasetStatus {
	status := domain.DatasetStatus{Source: s.loader.Source()}

	records, ok := s.snapshot.Get()
	if !ok {
		return status
	}

	status.Loaded = true
	status.Records = len(records)
	if loadedAt, ok := s.snapshot.LoadedAt(); ok {
		status.LoadedAt = &loadedAt
	}

	return status
}

// load lê a fonte uma única vez por chave; chamadas concorrentes recebem o mesmo resultado.
// Falhas não são memorizadas. A leitura compartilhada não é cancelada junto com a requisição de quem a iniciou.
func (s *Service) load(ctx context.Context, key string, force bool) ([]domain.SalesRecord, error) {
	logger := log.ForContext(ctx).WithField("source", s.loader.Source())
	loadCtx := context.WithoutCancel(ctx)

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		if records, ok := s.snapshot.Get(); ok && !force {
			return records, nil
		}

		start := time.Now()
		records, err := s.loader.Load(loadCtx)
		if err != nil {
			logger.WithError(err).Error("Erro ao carregar o dataset")
			return nil, err
		}

		s.snapshot.Set(records)
		logger.WithFields(log.Fields{
			"records":     len(records),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("Dataset carregado")

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.SalesRecord), nil
}
