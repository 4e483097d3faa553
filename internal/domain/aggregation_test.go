package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_SumOfGroupsEqualsTotal(t *testing.T) {
	records := sampleSales()
	total := Total(records)

	groupings := [][]Dimension{
		{DimensionStore},
		{DimensionRegion},
		{DimensionProduct},
		{DimensionSeller},
		{DimensionYear, DimensionMonth},
		{DimensionStore, DimensionProduct},
	}

	for _, dims := range groupings {
		t.Run(fmt.Sprint(dims), func(t *testing.T) {
			rows := Aggregate(records, dims...)

			sum := decimal.Zero
			count := 0
			for _, row := range rows {
				assert.Len(t, row.Keys, len(dims))
				sum = sum.Add(row.Sum)
				count += row.Count
			}

			assert.True(t, total.Equal(sum), "esperado %s, obtido %s", total, sum)
			assert.Equal(t, len(records), count)
		})
	}
}

func TestAggregate_FirstAppearanceOrder(t *testing.T) {
	rows := Aggregate(sampleSales(), DimensionSeller)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Ana"}, rows[0].Keys)
	assert.Equal(t, []string{"Bruno"}, rows[1].Keys)
	assert.Equal(t, []string{"Carla"}, rows[2].Keys)
	assert.Equal(t, []string{"Diego"}, rows[3].Keys)

	assert.Equal(t, 3, rows[0].Count)
	assert.True(t, decimal.RequireFromString("1560.00").Equal(rows[0].Sum))
}

func TestAggregate_DerivedMonthAndYear(t *testing.T) {
	rows := Aggregate(sampleSales(), DimensionYear, DimensionMonth)

	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"2022", "January"}, rows[0].Keys)
	assert.Equal(t, []string{"2022", "February"}, rows[1].Keys)
	assert.Equal(t, 2, rows[1].Count)
}

func TestTopStatesByCount(t *testing.T) {
	counts := map[string]int{
		"SP": 9, "RJ": 7, "MG": 6, "BA": 6, "RS": 4, "PR": 3, "AM": 2, "DF": 1,
	}

	records := make([]SalesRecord, 0)
	for _, store := range []string{"DF", "AM", "PR", "RS", "BA", "MG", "RJ", "SP"} {
		for i := 0; i < counts[store]; i++ {
			records = append(records, sale("2023-05-01", store, "Ana", "livros", "10"))
		}
	}

	rows := Aggregate(records, DimensionStore)
	require.Len(t, rows, 8)

	SortByCount(rows, true)
	top := Top(rows, TopStates)

	require.Len(t, top, 5)
	assert.Equal(t, []string{"SP"}, top[0].Keys)
	assert.Equal(t, []string{"RJ"}, top[1].Keys)
	// Empate entre MG e BA resolvido pela chave em ordem crescente
	assert.Equal(t, []string{"BA"}, top[2].Keys)
	assert.Equal(t, []string{"MG"}, top[3].Keys)
	assert.Equal(t, []string{"RS"}, top[4].Keys)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
}

func TestSortBySum(t *testing.T) {
	rows := []AggregationRow{
		{Keys: []string{"b"}, Sum: decimal.NewFromInt(10), Count: 1},
		{Keys: []string{"a"}, Sum: decimal.NewFromInt(10), Count: 2},
		{Keys: []string{"c"}, Sum: decimal.NewFromInt(30), Count: 3},
	}

	SortBySum(rows, true)
	assert.Equal(t, "c", rows[0].Key())
	assert.Equal(t, "a", rows[1].Key())
	assert.Equal(t, "b", rows[2].Key())

	SortBySum(rows, false)
	assert.Equal(t, "a", rows[0].Key())
	assert.Equal(t, "b", rows[1].Key())
	assert.Equal(t, "c", rows[2].Key())
}

func TestTop(t *testing.T) {
	rows := Aggregate(sampleSales(), DimensionSeller)

	assert.Len(t, Top(rows, 2), 2)
	assert.Len(t, Top(rows, 10), 4)
	assert.Len(t, Top(rows, 0), 4)
}
