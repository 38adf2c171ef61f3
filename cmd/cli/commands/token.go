package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/authenticating"
)

var (
	tokenSubject string
	tokenRole    string
)

var tokenCmd = &cobra.Command{
	Use:   "token --subject <nome> [--role admin|viewer]",
	Short: "Gera um token de acesso para a API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := authenticating.NewService(cfg).IssueToken(tokenSubject, tokenRole)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Identificação de quem vai usar o token.")
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.RoleViewer, "Perfil do token (admin ou viewer).")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(tokenCmd)
}
