package domain

import (
	"sort"
	"strings"
)

// Region é uma das cinco macrorregiões do Brasil
type Region string

const (
	// RegionBrasil é o sentinela de "sem restrição"
	RegionBrasil      Region = "Brasil"
	RegionNorte       Region = "Norte"
	RegionNordeste    Region = "Nordeste"
	RegionCentroOeste Region = "Centro-Oeste"
	RegionSudeste     Region = "Sudeste"
	RegionSul         Region = "Sul"
)

// Regions lista as macrorregiões válidas (sem o sentinela)
var Regions = []Region{
	RegionCentroOeste,
	RegionNordeste,
	RegionNorte,
	RegionSudeste,
	RegionSul,
}

// StoreLocation associa o código da loja (UF) à macrorregião e às coordenadas usadas no mapa
type StoreLocation struct {
	Code   string  `json:"code"`
	Region Region  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

var storeLocations = map[string]StoreLocation{
	"AC": {Code: "AC", Region: RegionNorte, Lat: -8.77, Lon: -70.55},
	"AL": {Code: "AL", Region: RegionNordeste, Lat: -9.62, Lon: -36.82},
	"AM": {Code: "AM", Region: RegionNorte, Lat: -3.47, Lon: -65.10},
	"AP": {Code: "AP", Region: RegionNorte, Lat: 1.41, Lon: -51.77},
	"BA": {Code: "BA", Region: RegionNordeste, Lat: -13.29, Lon: -41.71},
	"CE": {Code: "CE", Region: RegionNordeste, Lat: -5.20, Lon: -39.53},
	"DF": {Code: "DF", Region: RegionCentroOeste, Lat: -15.83, Lon: -47.86},
	"ES": {Code: "ES", Region: RegionSudeste, Lat: -19.19, Lon: -40.34},
	"GO": {Code: "GO", Region: RegionCentroOeste, Lat: -15.98, Lon: -49.86},
	"MA": {Code: "MA", Region: RegionNordeste, Lat: -5.42, Lon: -45.44},
	"MG": {Code: "MG", Region: RegionSudeste, Lat: -18.10, Lon: -44.38},
	"MS": {Code: "MS", Region: RegionCentroOeste, Lat: -20.51, Lon: -54.54},
	"MT": {Code: "MT", Region: RegionCentroOeste, Lat: -12.64, Lon: -55.42},
	"PA": {Code: "PA", Region: RegionNorte, Lat: -3.79, Lon: -52.48},
	"PB": {Code: "PB", Region: RegionNordeste, Lat: -7.28, Lon: -36.72},
	"PE": {Code: "PE", Region: RegionNordeste, Lat: -8.38, Lon: -37.86},
	"PI": {Code: "PI", Region: RegionNordeste, Lat: -6.60, Lon: -42.28},
	"PR": {Code: "PR", Region: RegionSul, Lat: -24.89, Lon: -51.55},
	"RJ": {Code: "RJ", Region: RegionSudeste, Lat: -22.25, Lon: -42.66},
	"RN": {Code: "RN", Region: RegionNordeste, Lat: -5.81, Lon: -36.59},
	"RO": {Code: "RO", Region: RegionNorte, Lat: -10.83, Lon: -63.34},
	"RR": {Code: "RR", Region: RegionNorte, Lat: 1.99, Lon: -61.33},
	"RS": {Code: "RS", Region: RegionSul, Lat: -30.17, Lon: -53.50},
	"SC": {Code: "SC", Region: RegionSul, Lat: -27.45, Lon: -50.95},
	"SE": {Code: "SE", Region: RegionNordeste, Lat: -10.57, Lon: -37.45},
	"SP": {Code: "SP", Region: RegionSudeste, Lat: -22.19, Lon: -48.79},
	"TO": {Code: "TO", Region: RegionNorte, Lat: -9.46, Lon: -48.26},
}

// ParseRegion converte o texto recebido na macrorregião correspondente.
// Vazio e "Brasil" retornam o sentinela RegionBrasil.
func ParseRegion(s string) (Region, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(RegionBrasil)) {
		return RegionBrasil, true
	}
	for _, region := range Regions {
		if strings.EqualFold(s, string(region)) {
			return region, true
		}
	}
	return "", false
}

// NormalizeStore padroniza o código da loja (UF) em maiúsculas e sem espaços
func NormalizeStore(store string) string {
	return strings.ToUpper(strings.TrimSpace(store))
}

// LocationOf retorna a localização de uma loja
func LocationOf(store string) (StoreLocation, bool) {
	location, ok := storeLocations[NormalizeStore(store)]
	return location, ok
}

// RegionOf retorna a macrorregião de uma loja
func RegionOf(store string) (Region, bool) {
	location, ok := LocationOf(store)
	if !ok {
		return "", false
	}
	return location.Region, true
}

// Coordinates retorna latitude e longitude de uma loja
func Coordinates(store string) (lat, lon float64, ok bool) {
	location, ok := LocationOf(store)
	if !ok {
		return 0, 0, false
	}
	return location.Lat, location.Lon, true
}

// StoresIn lista, em ordem alfabética, os códigos das lojas de uma macrorregião.
// Para RegionBrasil retorna todas as lojas.
func StoresIn(region Region) []string {
	stores := make([]string, 0, len(storeLocations))
	for code, location := range storeLocations {
		if region == RegionBrasil || location.Region == region {
			stores = append(stores, code)
		}
	}
	sort.Strings(stores)
	return stores
}
