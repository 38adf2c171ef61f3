// Package bootstrap monta as dependências compartilhadas pela API e pela CLI
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/infrastructure/database/postgres"
	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/gcs/gcsclient"
	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather"
	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather/owclient"
	"github.com/vfg2006/weather-bid-manager/infrastructure/repository"
	"github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/bulksheet"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/uploading"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/weathering"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
)

type App struct {
	Config      *config.Config
	Conn        *postgres.Connection
	Credentials configuring.CredentialManager
	Runner      *workflow.Service
}

// ConfigureLogger configura o formato e o nível dos logs
func ConfigureLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if cfg == nil {
		return
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

// New conecta ao banco e às APIs do Google e monta os casos de uso.
// O prompter define como a configuração SFTP é pedida quando não existe.
func New(ctx context.Context, cfg *config.Config, prompter configuring.Prompter) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	sheets, err := spreadsheet.NewSheetsClient(ctx, cfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("erro ao criar o cliente do Google Sheets: %w", err)
	}

	// Como ao abrir a planilha: cria as abas que faltam
	if _, err := sheets.EnsureSheets(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível verificar as abas da planilha")
	}

	storage, err := gcsclient.NewClient(ctx, cfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("erro ao criar o cliente do GCS: %w", err)
	}

	credentialRepo := repository.NewCredentialRepository(conn)
	credentials := configuring.NewService(credentialRepo, prompter, sheets)

	weatherService := openweather.New(cfg, owclient.NewClient(cfg))

	runner := workflow.NewService(
		cfg,
		weathering.NewService(cfg, weatherService, sheets, sheets),
		uploading.NewService(credentials, storage, sheets, sheets, sheets),
		bulksheet.NewService(sheets, sheets),
		credentials,
		sheets,
	)

	return &App{
		Config:      cfg,
		Conn:        conn,
		Credentials: credentials,
		Runner:      runner,
	}, nil
}

func (a *App) Close() {
	if a.Conn == nil {
		return
	}

	if err := a.Conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar a conexão com PostgreSQL")
	}
}
