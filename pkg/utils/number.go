package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maior porcentagem aceita; acima disso a conversão para inteiro estoura
const maxPercentage = math.MaxInt32

var ErrPercentageOutOfRange = errors.New("valor fora do intervalo de porcentagem")

// FractionToPercentage converte uma fração em porcentagem inteira, truncando
// a parte decimal (0.125 -> "12%", -0.125 -> "-12%").
// A fração deve vir validada por ParseFraction.
func FractionToPercentage(fraction float64) string {
	return formatPercentage(fraction * 100)
}

// ParseFraction interpreta uma fração ("0.125"); vazio vale zero.
// Rejeita NaN, infinito e valores cuja porcentagem não cabe num inteiro.
func ParseFraction(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("fração inválida %q: %w", raw, err)
	}

	if err := checkPercentage(number * 100); err != nil {
		return 0, fmt.Errorf("fração inválida %q: %w", raw, err)
	}

	return number, nil
}

// ParseBidPercentage converte a célula de ajuste de lance no texto enviado ao SA360.
// Frações são multiplicadas por 100 e truncadas ("0.29" -> "28%", como parseInt);
// porcentagens digitadas ("29%", "12.5%") são apenas truncadas, sem passar por fração.
func ParseBidPercentage(raw string) (string, error) {
	value := strings.TrimSpace(raw)

	if !strings.HasSuffix(value, "%") {
		fraction, err := ParseFraction(value)
		if err != nil {
			return "", err
		}
		return FractionToPercentage(fraction), nil
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(value, "%")), 64)
	if err != nil {
		return "", fmt.Errorf("porcentagem inválida %q: %w", raw, err)
	}

	if err := checkPercentage(number); err != nil {
		return "", fmt.Errorf("porcentagem inválida %q: %w", raw, err)
	}

	return formatPercentage(number), nil
}

func checkPercentage(percentage float64) error {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) || math.Abs(percentage) > maxPercentage {
		return ErrPercentageOutOfRange
	}
	return nil
}

func formatPercentage(percentage float64) string {
	return strconv.Itoa(int(math.Trunc(percentage))) + "%"
}

// FormatTemperature formata a temperatura sem casas decimais desnecessárias
func FormatTemperature(temperature float64) string {
	return strconv.FormatFloat(temperature, 'f', -1, 64)
}
