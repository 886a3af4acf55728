package main

import (
	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
	"github.com/spf13/cobra"
)

func (c *cli) academiasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "academias",
		Short: "List or register academias",
	}
	cmd.AddCommand(c.academiasListCmd(), c.academiasCreateCmd())
	return cmd
}

func (c *cli) academiasListCmd() *cobra.Command {
	var f gtjiu.AcademiaFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List academias, optionally by cidade and bairro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Service().ListarAcademias(cmd.Context(), f)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().StringVar(&f.Cidade, "cidade", "", "city")
	cmd.Flags().StringVar(&f.Bairro, "bairro", "", "neighbourhood")
	return cmd
}

func (c *cli) academiasCreateCmd() *cobra.Command {
	var in gtjiu.AcademiaInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new academia (requires login)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.app.RequireToken()
			if err != nil {
				return err
			}
			out, err := c.app.Service().CriarAcademia(cmd.Context(), token, in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&in.Nome, "nome", "", "name")
	fl.StringVar(&in.Mestre, "mestre", "", "head instructor")
	fl.StringVar(&in.Cidade, "cidade", "", "city")
	fl.StringVar(&in.Bairro, "bairro", "", "neighbourhood")
	fl.StringVar(&in.Telefone, "telefone", "", "phone, e.g. (31) 99999-8888")
	fl.StringVar(&in.Endereco, "endereco", "", "street address")
	fl.StringVar(&in.Email, "email", "", "contact e-mail")
	markRequired(cmd, "nome")
	return cmd
}
