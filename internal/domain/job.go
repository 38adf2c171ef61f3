package domain

import "time"

// JobType identifica uma das ações do menu da planilha
type JobType string

const (
	JobUpdateWeather        JobType = "weather"
	JobSendUpdate           JobType = "send"
	JobUpdateWeatherAndSend JobType = "weather-and-send"
	JobFormatBulkSheet      JobType = "format-bulk"
	JobClearConfig          JobType = "clear-config"
)

// JobTypes são os jobs que podem ser disparados manualmente pela API
var JobTypes = []JobType{
	JobUpdateWeather,
	JobSendUpdate,
	JobUpdateWeatherAndSend,
	JobFormatBulkSheet,
}

func (t JobType) IsValid() bool {
	for _, jobType := range JobTypes {
		if t == jobType {
			return true
		}
	}
	return false
}

// JobResult resume uma execução
type JobResult struct {
	Job           JobType               `json:"job"`
	RunID         string                `json:"run_id"`
	StartedAt     time.Time             `json:"started_at"`
	FinishedAt    time.Time             `json:"finished_at"`
	Weather       *WeatherUpdateSummary `json:"weather,omitempty"`
	Upload        *UploadResult         `json:"upload,omitempty"`
	FormattedRows *int                  `json:"formatted_rows,omitempty"`
}
