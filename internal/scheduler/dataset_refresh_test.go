package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func newRefreshService(t *testing.T, enabled bool, cron string) (*DatasetRefreshService, *mocks.MockDatasetProvider) {
	ctrl := gomock.NewController(t)
	dataset := mocks.NewMockDatasetProvider(ctrl)

	cfg := &config.Config{DatasetRefresh: config.DatasetRefresh{CronSchedule: cron, Enabled: enabled}}
	return NewDatasetRefreshService(dataset, cfg), dataset
}

func TestDatasetRefreshService_RefreshDataset(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(dataset *mocks.MockDatasetProvider)
		wantErr  bool
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Recarga com sucesso",
			setup: func(dataset *mocks.MockDatasetProvider) {
				dataset.EXPECT().Refresh(gomock.Any()).Return(make([]domain.SalesRecord, 3), nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 3, status["last_refresh_records"])
				assert.NotContains(t, status, "last_refresh_error")
			},
		},
		{
			name: "Fonte indisponível",
			setup: func(dataset *mocks.MockDatasetProvider) {
				dataset.EXPECT().Refresh(gomock.Any()).Return(nil, errors.New("arquivo não encontrado"))
			},
			wantErr: true,
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 0, status["last_refresh_records"])
				assert.Equal(t, "arquivo não encontrado", status["last_refresh_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dataset := newRefreshService(t, false, "0 5 * * *")
			tt.setup(dataset)

			err := service.RefreshDataset(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["refresh_running"])
			assert.False(t, status["last_refresh_started_at"].(time.Time).IsZero())
			assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
			tt.validate(t, status)
		})
	}
}

func TestDatasetRefreshService_RefreshDoesNotOverlap(t *testing.T) {
	service, dataset := newRefreshService(t, false, "0 5 * * *")

	started := make(chan struct{})
	release := make(chan struct{})
	dataset.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]domain.SalesRecord, error) {
			close(started)
			<-release
			return nil, nil
		}).
		Times(1)

	done := make(chan error)
	go func() { done <- service.RefreshDataset(context.Background()) }()
	<-started

	assert.Equal(t, true, service.GetStatus()["refresh_running"])
	assert.NoError(t, service.RefreshDataset(context.Background()))
	assert.False(t, service.TriggerManualRefresh())

	close(release)
	require.NoError(t, <-done)
}

func TestDatasetRefreshService_TriggerManualRefresh(t *testing.T) {
	service, dataset := newRefreshService(t, false, "0 5 * * *")

	done := make(chan struct{})
	dataset.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]domain.SalesRecord, error) {
			defer close(done)
			return make([]domain.SalesRecord, 1), nil
		})

	assert.True(t, service.TriggerManualRefresh())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["refresh_running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_ConcurrentManualTriggersStartOnce(t *testing.T) {
	service, dataset := newRefreshService(t, false, "0 5 * * *")

	release := make(chan struct{})
	done := make(chan struct{})
	dataset.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]domain.SalesRecord, error) {
			defer close(done)
			<-release
			return nil, nil
		}).
		Times(1)

	results := make(chan bool, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- service.TriggerManualRefresh()
		}()
	}
	wg.Wait()
	close(results)

	started := 0
	for ok := range results {
		if ok {
			started++
		}
	}
	assert.Equal(t, 1, started)

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executou")
	}
}

func TestDatasetRefreshService_Start(t *testing.T) {
	t.Run("Desabilitado", func(t *testing.T) {
		service, _ := newRefreshService(t, false, "0 5 * * *")
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Cron inválido", func(t *testing.T) {
		service, _ := newRefreshService(t, true, "todo dia")
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Habilitado", func(t *testing.T) {
		service, _ := newRefreshService(t, true, "0 5 * * *")
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		assert.NoError(t, service.Start(ctx))
		assert.Equal(t, true, service.GetStatus()["refresh_enabled"])
	})
}
