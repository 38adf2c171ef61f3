package domain

import (
	"strings"
	"unicode/utf8"
)

// MinLocationNameLength é o tamanho a partir do qual (exclusivo) um nome de
// localização é considerado válido para consulta
const MinLocationNameLength = 2

// Cabeçalhos da aba Weather. A busca é feita por "contém", como na planilha original.
const (
	HeaderLocationNameAPI   = "Location name API"
	HeaderLocationNameSA360 = "Location name SA360"
	HeaderWeatherCondition  = "Weather condition"
	HeaderWeatherTemp       = "Weather temperature"
	HeaderBidAdjustment     = "Bid adjustment"
)

// WeatherSheetHeaders é a ordem usada ao criar a aba Weather do zero
var WeatherSheetHeaders = []string{
	HeaderLocationNameAPI,
	HeaderLocationNameSA360,
	HeaderWeatherCondition,
	HeaderWeatherTemp,
	HeaderBidAdjustment,
}

// LocationRow representa uma linha configurada na aba Weather
type LocationRow struct {
	SheetRow          int      `json:"sheet_row"`
	APILocationName   string   `json:"api_location_name"`
	SA360LocationName string   `json:"sa360_location_name"`
	WeatherCondition  string   `json:"weather_condition"`
	Temperature       *float64 `json:"temperature"`
	// BidAdjustment guarda o valor bruto da célula (fração, "12.5%" ou vazio)
	BidAdjustment string `json:"bid_adjustment"`
}

// IsEligible indica se a linha tem um nome de localização utilizável na API
func (r *LocationRow) IsEligible() bool {
	if r == nil {
		return false
	}

	return utf8.RuneCountInString(strings.TrimSpace(r.APILocationName)) > MinLocationNameLength
}

// ApplyReading grava o resultado da consulta na linha
func (r *LocationRow) ApplyReading(reading *WeatherReading) {
	if reading == nil {
		return
	}

	temperature := reading.Temperature
	r.WeatherCondition = reading.Condition
	r.Temperature = &temperature
}

// WeatherReading é o resultado efêmero de uma consulta de clima
type WeatherReading struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

// WeatherUpdateSummary resume uma execução da atualização de clima
type WeatherUpdateSummary struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}
