package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		prefix   string
		expected string
	}{
		{name: "sem escala", value: 500, expected: "500.00 "},
		{name: "zero", value: 0, expected: "0.00 "},
		{name: "limite inferior de mil", value: 999.99, expected: "999.99 "},
		{name: "mil", value: 1500, expected: "1.50 mil"},
		{name: "exatamente mil", value: 1000, expected: "1.00 mil"},
		{name: "milhões", value: 2_500_000, expected: "2.50 milhões"},
		{name: "bilhões continuam em milhões", value: 3_000_000_000, expected: "3000.00 milhões"},
		{name: "com prefixo", value: 1500, prefix: "R$", expected: "R$ 1.50 mil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.value, tt.prefix))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.126))
	assert.Equal(t, 10.12, RoundWithTwoDecimalPlace(10.124))
}
