package commands

import (
	"context"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/vfg2006/weather-bid-manager/internal/bootstrap"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var nonInteractive bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Usa a configuração SFTP do ambiente em vez de perguntar no terminal.")

	rootCmd.AddCommand(
		jobCommand("update-weather", "Atualiza o clima de cada localização da aba Weather.", domain.JobUpdateWeather),
		jobCommand("send", "Copia os ajustes de lance para a aba Upload e envia ao SA360.", domain.JobSendUpdate),
		jobCommand("update-and-send", "Atualiza o clima e envia os ajustes de lance ao SA360.", domain.JobUpdateWeatherAndSend),
		jobCommand("format-bulk", "Copia as linhas de localização da exportação do SA360 para a aba Upload.", domain.JobFormatBulkSheet),
		jobCommand("clear-config", "Apaga a configuração SFTP/GCS gravada.", domain.JobClearConfig),
	)
}

func jobCommand(use, short string, job domain.JobType) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd.Context(), job)
		},
	}
}

func runJob(ctx context.Context, job domain.JobType) error {
	app, err := bootstrap.New(ctx, cfg, prompter())
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.Runner.Run(ctx, job)
	if result != nil {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(result)
	}

	return err
}

func prompter() configuring.Prompter {
	if nonInteractive {
		return configuring.NewStaticPrompterFromConfig(cfg)
	}
	return configuring.NewTerminalPrompter(os.Stdin, os.Stderr)
}
