package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

type idleRefresher struct{}

func (idleRefresher) TriggerManualRefresh() bool { return true }
func (idleRefresher) GetStatus() map[string]any  { return map[string]any{} }

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	dataset := mocks.NewMockDatasetProvider(ctrl)

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}
	h := NewHandler(cfg, Services{
		Dataset:       dataset,
		Dashboard:     dashboarding.NewService(dataset),
		Exporter:      exporting.NewService(),
		Authenticator: authenticating.NewService(config.Auth{Secret: "segredo"}),
		Refresher:     idleRefresher{},
	})

	t.Run("Preflight CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Notification")
	})

	t.Run("Healthcheck", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota administrativa sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/dataset/refresh", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
