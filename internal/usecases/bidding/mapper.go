package bidding

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/pkg/utils"
)

// ComputeAdjustments monta o mapa nome SA360 -> porcentagem ("12%") a partir da aba Weather.
// Linhas sem nome SA360 ou com valor ilegível são ignoradas; duplicatas posteriores prevalecem.
func ComputeAdjustments(rows []*domain.LocationRow) map[string]string {
	adjustments := make(map[string]string, len(rows))

	for _, row := range rows {
		if row == nil || strings.TrimSpace(row.SA360LocationName) == "" {
			continue
		}

		percentage, err := utils.ParseBidPercentage(row.BidAdjustment)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"location":  row.SA360LocationName,
				"sheet_row": row.SheetRow,
			}).WithError(err).Warn("Ajuste de lance ignorado")
			continue
		}

		adjustments[row.SA360LocationName] = percentage
	}

	return adjustments
}

// Apply grava a porcentagem nas linhas cuja Location coincide exatamente com uma chave do mapa.
// Devolve quantas linhas foram alteradas.
func Apply(rows []*domain.BulkUploadRow, adjustments map[string]string) int {
	matched := 0

	for _, row := range rows {
		if row == nil {
			continue
		}

		percentage, ok := adjustments[row.Location]
		if !ok {
			continue
		}

		row.LocationBidAdjustmentPct = percentage
		matched++
	}

	return matched
}
