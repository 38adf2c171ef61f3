package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vfg2006/weather-bid-manager/internal/bootstrap"
	"github.com/vfg2006/weather-bid-manager/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "weather-bid",
	Short:         "weather-bid atualiza o clima das localizações e envia os ajustes de lance ao SA360.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bootstrap.ConfigureLogger(nil)

		loaded, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("erro ao carregar configuração: %w", err)
		}
		bootstrap.ConfigureLogger(loaded)

		cfg = loaded
		return nil
	},
}

// ExecuteContext roda a CLI; qualquer erro encerra com código 1
func ExecuteContext(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
