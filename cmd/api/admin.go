package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domainerrors "github.com/rafabene/kitanda-backend/internal/domain/errors"
	"github.com/rafabene/kitanda-backend/internal/handlers/dto"
	"github.com/rafabene/kitanda-backend/internal/infrastructure/i18n"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Gerencia administradores",
	}
	admin.AddCommand(newAdminCreateCmd())
	return admin
}

func newAdminCreateCmd() *cobra.Command {
	var req dto.RegisterRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Cria um usuário ADMIN",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer a.close()

			user, err := a.authService.CreateAdmin(context.Background(), &req)
			if err != nil {
				return fmt.Errorf("failed to create admin: %s", describe(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "admin %s criado (%s)\n", user.Email.String(), user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email do administrador")
	cmd.Flags().StringVar(&req.Password, "password", "", "senha (mínimo 6 caracteres)")
	cmd.Flags().StringVar(&req.Name, "name", "", "nome do administrador")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// describe traduz erros de domínio para a mensagem em inglês
func describe(err error) string {
	translator, tErr := i18n.NewEmbeddedService("en")
	if tErr != nil {
		return err.Error()
	}

	params := map[string]interface{}{}
	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		params["Field"] = domainErr.Field
	}
	return translator.T("en", domainerrors.MessageID(err), params)
}
