package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input    string
		expected Region
		ok       bool
	}{
		{input: "", expected: RegionBrasil, ok: true},
		{input: "Brasil", expected: RegionBrasil, ok: true},
		{input: "sudeste", expected: RegionSudeste, ok: true},
		{input: "Centro-Oeste", expected: RegionCentroOeste, ok: true},
		{input: " Sul ", expected: RegionSul, ok: true},
		{input: "Oeste", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			region, ok := ParseRegion(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, region)
			}
		})
	}
}

func TestStoreLocations(t *testing.T) {
	assert.Len(t, StoresIn(RegionBrasil), 27)

	total := 0
	for _, region := range Regions {
		stores := StoresIn(region)
		assert.NotEmpty(t, stores, region)
		total += len(stores)
	}
	assert.Equal(t, 27, total)

	assert.Equal(t, []string{"PR", "RS", "SC"}, StoresIn(RegionSul))

	region, ok := RegionOf("ba")
	assert.True(t, ok)
	assert.Equal(t, RegionNordeste, region)

	lat, lon, ok := Coordinates("DF")
	assert.True(t, ok)
	assert.InDelta(t, -15.83, lat, 0.01)
	assert.InDelta(t, -47.86, lon, 0.01)

	_, ok = RegionOf("XX")
	assert.False(t, ok)
}
