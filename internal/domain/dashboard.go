package domain

import "time"

// Metrics são os indicadores exibidos no topo do dashboard
type Metrics struct {
	Revenue         float64 `json:"revenue"`
	RevenueLabel    string  `json:"revenue_label"`
	SalesCount      int     `json:"sales_count"`
	SalesCountLabel string  `json:"sales_count_label"`
}

// MapPoint é um ponto do mapa, dimensionado pelo valor
type MapPoint struct {
	Store  string  `json:"store"`
	Region Region  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Value  float64 `json:"value"`
}

// MonthlyPoint é um ponto da linha de tendência mensal
type MonthlyPoint struct {
	Year        string  `json:"year"`
	Month       string  `json:"month"`
	MonthNumber int     `json:"month_number"`
	Value       float64 `json:"value"`
}

// BarItem é uma barra de um gráfico por dimensão
type BarItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SellerItem é uma linha do ranking de vendedores
type SellerItem struct {
	Seller  string  `json:"seller"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// ChartSet reúne as quatro visões de uma aba (receita ou quantidade)
type ChartSet struct {
	Map       []MapPoint     `json:"map"`
	Monthly   []MonthlyPoint `json:"monthly"`
	TopStates []BarItem      `json:"top_states"`
	Products  []BarItem      `json:"products"`
}

// SellerRanking é a aba de vendedores
type SellerRanking struct {
	Limit     int          `json:"limit"`
	ByRevenue []SellerItem `json:"by_revenue"`
	ByCount   []SellerItem `json:"by_count"`
}

// Dashboard é o estado de renderização resultante de um FilterState
type Dashboard struct {
	Filters      FilterState   `json:"filters"`
	MatchedCount int           `json:"matched_count"`
	Metrics      Metrics       `json:"metrics"`
	Revenue      ChartSet      `json:"revenue"`
	Quantity     ChartSet      `json:"quantity"`
	Sellers      SellerRanking `json:"sellers"`
}

// Table é a tabela de dados brutos filtrada, apenas com as colunas visíveis
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
}

// FilterOptions são os valores disponíveis para os filtros, calculados sobre o dataset completo
type FilterOptions struct {
	Regions   []Region   `json:"regions"`
	Years     []int      `json:"years"`
	Sellers   []string   `json:"sellers"`
	Products  []string   `json:"products"`
	Stores    []string   `json:"stores"`
	MinAmount float64    `json:"min_amount"`
	MaxAmount float64    `json:"max_amount"`
	MinDate   *time.Time `json:"min_date,omitempty"`
	MaxDate   *time.Time `json:"max_date,omitempty"`
}

// ExportFile é o artefato CSV oferecido para download
type ExportFile struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Rows        int    `json:"rows"`
	Content     []byte `json:"-"`
}

// DatasetStatus descreve o conteúdo atual do cache do dataset
type DatasetStatus struct {
	Source   string     `json:"source"`
	Loaded   bool       `json:"loaded"`
	Records  int        `json:"records"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}
