package loading

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_loading.go -package=mocks

// Loader lê o dataset completo de uma fonte (arquivo CSV ou tabela do banco)
type Loader interface {
	Load(ctx context.Context) ([]domain.SalesRecord, error)
	Source() string
}

// DatasetProvider entrega o dataset memorizado para os demais casos de uso
type DatasetProvider interface {
	// Records retorna o dataset em cache, carregando da fonte na primeira chamada
	Records(ctx context.Context) ([]domain.SalesRecord, error)

	// Clear descarta o cache; a próxima chamada a Records relê a fonte
	Clear()

	// Refresh relê a fonte e substitui o cache só em caso de sucesso
	Refresh(ctx context.Context) ([]domain.SalesRecord, error)

	Status() domain.DatasetStatus
}
