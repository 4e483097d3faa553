package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para a data da venda vinda de arquivos e bancos
var saleDateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDate converte uma data no formato YYYY-MM-DD. Texto vazio retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseSaleDate tenta os formatos conhecidos de data de venda
func ParseSaleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range saleDateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("data em formato desconhecido: %q", value)
}
