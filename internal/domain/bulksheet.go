package domain

// RowTypeLocationTarget identifica as linhas de segmentação geográfica do bulk sheet
const RowTypeLocationTarget = "location target"

// Cabeçalhos fixos do bulk sheet do SA360, na ordem em que são enviados
const (
	BulkHeaderRowType                  = "Row Type"
	BulkHeaderAction                   = "Action"
	BulkHeaderStatus                   = "Status"
	BulkHeaderLocation                 = "Location"
	BulkHeaderLocationBidAdjustment    = "Location bid adjustment %"
	BulkHeaderRecommendedBidAdjustment = "Recommended bid adjustment %"
	BulkHeaderTargetID                 = "Target ID"
	BulkHeaderAdvertiserID             = "Advertiser ID"
	BulkHeaderAdvertiser               = "Advertiser"
	BulkHeaderAccountID                = "Account ID"
	BulkHeaderAccount                  = "Account"
	BulkHeaderCampaignID               = "Campaign ID"
	BulkHeaderCampaign                 = "Campaign"
)

var BulkSheetHeaders = []string{
	BulkHeaderRowType,
	BulkHeaderAction,
	BulkHeaderStatus,
	BulkHeaderLocation,
	BulkHeaderLocationBidAdjustment,
	BulkHeaderRecommendedBidAdjustment,
	BulkHeaderTargetID,
	BulkHeaderAdvertiserID,
	BulkHeaderAdvertiser,
	BulkHeaderAccountID,
	BulkHeaderAccount,
	BulkHeaderCampaignID,
	BulkHeaderCampaign,
}

// Índice da coluna de ajuste de lance na aba Upload (0-based)
const BulkColumnLocationBidAdjustment = 4

type BulkUploadRow struct {
	RowType                     string `json:"row_type"`
	Action                      string `json:"action"`
	Status                      string `json:"status"`
	Location                    string `json:"location"`
	LocationBidAdjustmentPct    string `json:"location_bid_adjustment_pct"`
	RecommendedBidAdjustmentPct string `json:"recommended_bid_adjustment_pct"`
	TargetID                    string `json:"target_id"`
	AdvertiserID                string `json:"advertiser_id"`
	Advertiser                  string `json:"advertiser"`
	AccountID                   string `json:"account_id"`
	Account                     string `json:"account"`
	CampaignID                  string `json:"campaign_id"`
	Campaign                    string `json:"campaign"`
}

// NewBulkUploadRow monta uma linha a partir das células na ordem de BulkSheetHeaders.
// Células ausentes ficam vazias.
func NewBulkUploadRow(cells []string) *BulkUploadRow {
	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	return &BulkUploadRow{
		RowType:                     cell(0),
		Action:                      cell(1),
		Status:                      cell(2),
		Location:                    cell(3),
		LocationBidAdjustmentPct:    cell(4),
		RecommendedBidAdjustmentPct: cell(5),
		TargetID:                    cell(6),
		AdvertiserID:                cell(7),
		Advertiser:                  cell(8),
		AccountID:                   cell(9),
		Account:                     cell(10),
		CampaignID:                  cell(11),
		Campaign:                    cell(12),
	}
}

// Values devolve as células na ordem de BulkSheetHeaders
func (r *BulkUploadRow) Values() []string {
	return []string{
		r.RowType,
		r.Action,
		r.Status,
		r.Location,
		r.LocationBidAdjustmentPct,
		r.RecommendedBidAdjustmentPct,
		r.TargetID,
		r.AdvertiserID,
		r.Advertiser,
		r.AccountID,
		r.Account,
		r.CampaignID,
		r.Campaign,
	}
}

// BulkSheetGrid devolve o cabeçalho seguido das linhas, pronto para CSV
func BulkSheetGrid(rows []*BulkUploadRow) [][]string {
	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, append([]string(nil), BulkSheetHeaders...))
	for _, row := range rows {
		grid = append(grid, row.Values())
	}
	return grid
}

// UploadResult descreve o envio de um bulk sheet
type UploadResult struct {
	Advertiser   string `json:"advertiser"`
	AdvertiserID string `json:"advertiser_id"`
	FileName     string `json:"file_name,omitempty"`
	ObjectID     string `json:"object_id,omitempty"`
	Rows         int    `json:"rows"`
	Skipped      bool   `json:"skipped"`
}
