package dashboarding

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const revenuePrefix = "R$"

type Dashboarder interface {
	// Dashboard calcula métricas, gráficos e ranking de vendedores para os filtros informados
	Dashboard(ctx context.Context, filters domain.FilterState) (*domain.Dashboard, error)

	// RawData retorna a tabela filtrada somente com as colunas visíveis
	RawData(ctx context.Context, filters domain.FilterState) (*domain.Table, error)

	// Options lista os valores disponíveis para os filtros no dataset completo
	Options(ctx context.Context) (*domain.FilterOptions, error)
}

type Service struct {
	dataset loading.DatasetProvider
}

func NewService(dataset loading.DatasetProvider) Dashboarder {
	return &Service{dataset: dataset}
}

func (s *Service) Dashboard(ctx context.Context, filters domain.FilterState) (*domain.Dashboard, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	records, err := s.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	filters = normalize(filters)
	matched := filters.Apply(records)

	log.ForContext(ctx).WithFields(log.Fields{
		"records": len(records),
		"matched": len(matched),
	}).Debug("Dashboard calculado")

	byStore := domain.Aggregate(matched, domain.DimensionStore)
	byMonth := domain.Aggregate(matched, domain.DimensionYear, domain.DimensionMonth)
	byProduct := domain.Aggregate(matched, domain.DimensionProduct)
	bySeller := domain.Aggregate(matched, domain.DimensionSeller)

	total := domain.Total(matched).InexactFloat64()

	return &domain.Dashboard{
		Filters:      filters,
		MatchedCount: len(matched),
		Metrics: domain.Metrics{
			Revenue:         utils.RoundWithTwoDecimalPlace(total),
			RevenueLabel:    utils.FormatNumber(total, revenuePrefix),
			SalesCount:      len(matched),
			SalesCountLabel: utils.FormatNumber(float64(len(matched)), ""),
		},
		Revenue:  buildChartSet(byStore, byMonth, byProduct, revenueValue, domain.SortBySum),
		Quantity: buildChartSet(byStore, byMonth, byProduct, countValue, domain.SortByCount),
		Sellers:  buildSellerRanking(bySeller, filters.TopSellers),
	}, nil
}

func (s *Service) RawData(ctx context.Context, filters domain.FilterState) (*domain.Table, error) {
	if len(filters.Columns) == 0 {
		return nil, domain.NewFilterError(domain.ErrNoColumns, "columns", "selecione ao menos uma coluna")
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	records, err := s.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	matched := filters.Apply(records)
	columns := visibleColumns(filters.Columns)

	rows := make([][]string, 0, len(matched))
	for _, record := range matched {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = record.Value(column)
		}
		rows = append(rows, row)
	}

	return &domain.Table{
		Columns: columns,
		Rows:    rows,
		Total:   len(rows),
	}, nil
}

func (s *Service) Options(ctx context.Context) (*domain.FilterOptions, error) {
	records, err := s.dataset.Records(ctx)
	if err != nil {
		return nil, err
	}

	sellers := make(map[string]struct{})
	products := make(map[string]struct{})
	stores := make(map[string]struct{})
	years := make(map[int]struct{})

	options := &domain.FilterOptions{
		Regions: append([]domain.Region{domain.RegionBrasil}, domain.Regions...),
	}

	for i, record := range records {
		sellers[record.Seller] = struct{}{}
		products[record.Product] = struct{}{}
		stores[record.Store] = struct{}{}
		years[record.SaleDate.Year()] = struct{}{}

		amount := record.Amount.InexactFloat64()
		date := record.SaleDate
		if i == 0 {
			options.MinAmount, options.MaxAmount = amount, amount
			options.MinDate, options.MaxDate = &date, &date
			continue
		}

		if amount < options.MinAmount {
			options.MinAmount = amount
		}
		if amount > options.MaxAmount {
			options.MaxAmount = amount
		}
		if date.Before(*options.MinDate) {
			options.MinDate = &date
		}
		if date.After(*options.MaxDate) {
			options.MaxDate = &date
		}
	}

	options.Sellers = sortedKeys(sellers)
	options.Products = sortedKeys(products)
	options.Stores = sortedKeys(stores)
	options.Years = make([]int, 0, len(years))
	for year := range years {
		options.Years = append(options.Years, year)
	}
	sort.Ints(options.Years)

	return options, nil
}

type valueFunc func(row domain.AggregationRow) float64

func revenueValue(row domain.AggregationRow) float64 {
	return utils.RoundWithTwoDecimalPlace(row.Sum.InexactFloat64())
}

func countValue(row domain.AggregationRow) float64 {
	return float64(row.Count)
}

// buildChartSet monta as quatro visões de uma aba. As linhas agregadas são copiadas antes de ordenar.
func buildChartSet(
	byStore, byMonth, byProduct []domain.AggregationRow,
	value valueFunc,
	sortRows func([]domain.AggregationRow, bool),
) domain.ChartSet {
	stores := clone(byStore)
	sortRows(stores, true)

	products := clone(byProduct)
	sortRows(products, true)

	chart := domain.ChartSet{
		Map:       make([]domain.MapPoint, 0, len(stores)),
		Monthly:   monthlySeries(byMonth, value),
		TopStates: make([]domain.BarItem, 0, domain.TopStates),
		Products:  make([]domain.BarItem, 0, len(products)),
	}

	for _, row := range stores {
		location, ok := domain.LocationOf(row.Keys[0])
		if !ok {
			continue
		}
		chart.Map = append(chart.Map, domain.MapPoint{
			Store:  row.Keys[0],
			Region: location.Region,
			Lat:    location.Lat,
			Lon:    location.Lon,
			Value:  value(row),
		})
	}

	for _, row := range domain.Top(stores, domain.TopStates) {
		chart.TopStates = append(chart.TopStates, domain.BarItem{Label: row.Keys[0], Value: value(row)})
	}

	for _, row := range products {
		chart.Products = append(chart.Products, domain.BarItem{Label: row.Keys[0], Value: value(row)})
	}

	return chart
}

// monthlySeries ordena os pontos por ano e depois pelo número do mês
func monthlySeries(byMonth []domain.AggregationRow, value valueFunc) []domain.MonthlyPoint {
	points := make([]domain.MonthlyPoint, 0, len(byMonth))
	for _, row := range byMonth {
		points = append(points, domain.MonthlyPoint{
			Year:        row.Keys[0],
			Month:       row.Keys[1],
			MonthNumber: monthNumber(row.Keys[1]),
			Value:       value(row),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		yi, _ := strconv.Atoi(points[i].Year)
		yj, _ := strconv.Atoi(points[j].Year)
		if yi != yj {
			return yi < yj
		}
		return points[i].MonthNumber < points[j].MonthNumber
	})

	return points
}

func buildSellerRanking(bySeller []domain.AggregationRow, limit int) domain.SellerRanking {
	byRevenue := clone(bySeller)
	domain.SortBySum(byRevenue, true)

	byCount := clone(bySeller)
	domain.SortByCount(byCount, true)

	return domain.SellerRanking{
		Limit:     limit,
		ByRevenue: sellerItems(domain.Top(byRevenue, limit)),
		ByCount:   sellerItems(domain.Top(byCount, limit)),
	}
}

func sellerItems(rows []domain.AggregationRow) []domain.SellerItem {
	items := make([]domain.SellerItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.SellerItem{
			Seller:  row.Keys[0],
			Revenue: revenueValue(row),
			Count:   row.Count,
		})
	}
	return items
}

// normalize preenche os valores padrão que a validação aceita como vazios
func normalize(filters domain.FilterState) domain.FilterState {
	region, _ := domain.ParseRegion(string(filters.Region))
	filters.Region = region
	filters.TopSellers = filters.TopSellersOrDefault()
	return filters
}

// visibleColumns mantém a ordem canônica das colunas, ignorando repetições
func visibleColumns(selected []string) []string {
	wanted := make(map[string]bool, len(selected))
	for _, column := range selected {
		wanted[column] = true
	}

	columns := make([]string, 0, len(wanted))
	for _, column := range domain.Columns {
		if wanted[column] {
			columns = append(columns, column)
		}
	}
	return columns
}

func monthNumber(name string) int {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return int(m)
		}
	}
	return 0
}

func clone(rows []domain.AggregationRow) []domain.AggregationRow {
	out := make([]domain.AggregationRow, len(rows))
	copy(out, rows)
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
