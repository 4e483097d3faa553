package utils

import (
	"fmt"
	"math"
)

var numberUnits = []string{"", "mil"}

const largestNumberUnit = "milhões"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatNumber escala o valor de mil em mil até ficar abaixo de 1000 na unidade atual.
// Ex.: 500 -> "500.00 ", 1500 -> "1.50 mil", 2500000 -> "2.50 milhões", (1500, "R$") -> "R$ 1.50 mil"
func FormatNumber(value float64, prefix string) string {
	for _, unit := range numberUnits {
		if value < 1000 {
			return withPrefix(prefix, fmt.Sprintf("%.2f %s", value, unit))
		}
		value /= 1000
	}

	return withPrefix(prefix, fmt.Sprintf("%.2f %s", value, largestNumberUnit))
}

func withPrefix(prefix, s string) string {
	if prefix == "" {
		return s
	}
	return prefix + " " + s
}
