package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/internal/api"
	"github.com/vfg2006/weather-bid-manager/internal/bootstrap"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/scheduler"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/authenticating"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
)

func main() {
	bootstrap.ConfigureLogger(nil)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	bootstrap.ConfigureLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No servidor ninguém responde às perguntas: a configuração SFTP vem do ambiente
	app, err := bootstrap.New(ctx, cfg, configuring.NewStaticPrompterFromConfig(cfg))
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer app.Close()

	authenticator := authenticating.NewService(cfg)

	weatherBidSyncService := scheduler.NewWeatherBidSyncService(app.Runner, cfg)
	if err := weatherBidSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de clima e lances")
	} else {
		logrus.Info("Agendador de clima e lances iniciado com sucesso")
	}

	server, err := api.New(cfg, authenticator, app.Runner, app.Credentials, weatherBidSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
