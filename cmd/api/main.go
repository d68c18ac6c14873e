// @title           Kitanda API
// @version         1.0
// @description     Diretório de negócios e produtos: cadastro de vendedores, negócios e catálogo.
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Token no formato: Bearer <token>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "kitanda",
		Short:         "Kitanda backend",
		Long:          "API do diretório Kitanda. Sem subcomando, inicia o servidor HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newAdminCmd())

	return root
}
