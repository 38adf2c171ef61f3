package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	OpenWeather     OpenWeather     `mapstructure:",squash"`
	Sheets          Sheets          `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	Advertiser      Advertiser      `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	WeatherBidSync  WeatherBidSync  `mapstructure:",squash"`
	RunLogLocation  *time.Location  `mapstructure:"-"`
	RunLogTimezone  string          `mapstructure:"run_log_timezone"`
	CorsAllowedURLs CorsAllowedURLs `mapstructure:",squash"`
}

type App struct {
	LogLevel   string        `mapstructure:"log_level"`
	JobTimeout time.Duration `mapstructure:"job_timeout"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type OpenWeather struct {
	BaseURL        string        `mapstructure:"openweather_base_url"`
	APIKey         string        `mapstructure:"openweather_api_key"`
	Units          string        `mapstructure:"openweather_units"`
	MaxRetries     int           `mapstructure:"weather_max_retries"`
	RetryDelay     time.Duration `mapstructure:"weather_retry_delay"`
	LocationDelay  time.Duration `mapstructure:"weather_location_delay"`
	RequestTimeout time.Duration `mapstructure:"weather_request_timeout"`
}

type Sheets struct {
	SpreadsheetID   string `mapstructure:"sheets_spreadsheet_id"`
	CredentialsFile string `mapstructure:"sheets_credentials_file"`
	WeatherSheet    string `mapstructure:"sheets_weather_sheet"`
	UploadSheet     string `mapstructure:"sheets_upload_sheet"`
	SourceSheet     string `mapstructure:"sheets_source_sheet"`
	LogSheet        string `mapstructure:"sheets_log_sheet"`
}

type Storage struct {
	UploadBaseURL   string        `mapstructure:"gcs_upload_base_url"`
	AccessToken     string        `mapstructure:"gcs_access_token"`
	CredentialsFile string        `mapstructure:"gcs_credentials_file"`
	RequestTimeout  time.Duration `mapstructure:"gcs_request_timeout"`
}

// Advertiser contém os valores usados para pré-configurar o acesso SFTP/GCS
// quando não há ninguém para responder às perguntas (ex.: servidor).
type Advertiser struct {
	SFTPHost     string `mapstructure:"sftp_host"`
	SFTPPort     string `mapstructure:"sftp_port"`
	SFTPUsername string `mapstructure:"sftp_username"`
	SFTPPassword string `mapstructure:"sftp_password"`
	Bucket       string `mapstructure:"gcs_bucket"`
	CallbackURL  string `mapstructure:"transfer_callback_url"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type WeatherBidSync struct {
	CronSchedule string `mapstructure:"weather_bid_sync_cron"`
	Enabled      bool   `mapstructure:"weather_bid_sync_enabled"`
	SendEnabled  bool   `mapstructure:"weather_bid_sync_send_enabled"`
}

type CorsAllowedURLs struct {
	Origins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("JOB_TIMEOUT", "6m") // limite de execução de um job completo

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/weather_bid?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OPENWEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5")
	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_UNITS", "metric")  // metric/imperial para Celsius/Fahrenheit
	viper.SetDefault("WEATHER_MAX_RETRIES", 10)      // tentativas por localização
	viper.SetDefault("WEATHER_RETRY_DELAY", "3s")    // pausa fixa entre tentativas
	viper.SetDefault("WEATHER_LOCATION_DELAY", "1s") // pausa entre localizações
	viper.SetDefault("WEATHER_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_WEATHER_SHEET", "Weather")
	viper.SetDefault("SHEETS_UPLOAD_SHEET", "Upload")
	viper.SetDefault("SHEETS_SOURCE_SHEET", "FromSA360")
	viper.SetDefault("SHEETS_LOG_SHEET", "Log")
	viper.SetDefault("RUN_LOG_TIMEZONE", "")

	viper.SetDefault("GCS_UPLOAD_BASE_URL", "https://www.googleapis.com/upload/storage/v1/b")
	viper.SetDefault("GCS_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("GCS_CREDENTIALS_FILE", "")
	viper.SetDefault("GCS_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("SFTP_HOST", "")
	viper.SetDefault("SFTP_PORT", "")
	viper.SetDefault("SFTP_USERNAME", "")
	viper.SetDefault("SFTP_PASSWORD", "")
	viper.SetDefault("GCS_BUCKET", "")
	viper.SetDefault("TRANSFER_CALLBACK_URL", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("WEATHER_BID_SYNC_CRON", "0 6 * * *")   // Todos os dias às 6h da manhã
	viper.SetDefault("WEATHER_BID_SYNC_ENABLED", false)      // Habilitar atualização agendada
	viper.SetDefault("WEATHER_BID_SYNC_SEND_ENABLED", false) // Enviar ao SA360 após atualizar o clima

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize calcula os campos derivados depois do unmarshal
func (c *Config) finalize() error {
	c.Database.DSN = buildDSN(c.Database)

	location, err := ResolveRunLogLocation(c.RunLogTimezone)
	if err != nil {
		return err
	}
	c.RunLogLocation = location

	if c.OpenWeather.MaxRetries < 1 {
		logrus.Warnf("WEATHER_MAX_RETRIES inválido (%d), usando 1", c.OpenWeather.MaxRetries)
		c.OpenWeather.MaxRetries = 1
	}

	return nil
}

func buildDSN(db Database) string {
	return db.Driver + "://" + db.User + ":" + db.Password + "@" + db.URL
}

// ResolveRunLogLocation devolve o fuso horário usado nos carimbos da aba de log.
// Sem configuração, usa GMT+01:00 fixo.
func ResolveRunLogLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.FixedZone("GMT+01:00", 60*60), nil
	}

	return time.LoadLocation(name)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
