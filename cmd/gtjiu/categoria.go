package main

import (
	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
	"github.com/spf13/cobra"
)

func (c *cli) categoriaCmd() *cobra.Command {
	var in gtjiu.CategoriaRequest
	cmd := &cobra.Command{
		Use:   "categoria",
		Short: "Look up the age bracket and weight class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Service().CalcularCategoria(cmd.Context(), in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().IntVar(&in.Idade, "idade", 0, "age in years")
	cmd.Flags().Float64Var(&in.Peso, "peso", 0, "weight in kg")
	cmd.Flags().StringVar(&in.Sexo, "sexo", "", "M or F")
	markRequired(cmd, "idade", "peso", "sexo")
	return cmd
}
