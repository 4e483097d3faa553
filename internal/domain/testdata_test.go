package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func sale(date, store, seller, product, amount string) SalesRecord {
	saleDate, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return SalesRecord{
		SaleDate: saleDate,
		Store:    store,
		Seller:   seller,
		Product:  product,
		Amount:   decimal.RequireFromString(amount),
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func datePtr(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func sampleSales() []SalesRecord {
	return []SalesRecord{
		sale("2022-01-10", "SP", "Ana", "eletronicos", "1500.00"),
		sale("2022-02-11", "RJ", "Bruno", "moveis", "800.50"),
		sale("2022-02-20", "BA", "Carla", "livros", "45.90"),
		sale("2023-03-05", "SP", "Ana", "livros", "60.00"),
		sale("2023-03-18", "RS", "Diego", "eletronicos", "2200.00"),
		sale("2023-07-01", "AM", "Bruno", "moveis", "999.99"),
		sale("2023-12-31", "DF", "Carla", "brinquedos", "120.00"),
		sale("2023-12-31", "PR", "Ana", "brinquedos", "0.00"),
	}
}
