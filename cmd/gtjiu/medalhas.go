package main

import (
	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
	"github.com/spf13/cobra"
)

func (c *cli) medalhasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medalhas",
		Short: "List, record or look up medals",
	}
	cmd.AddCommand(c.medalhasListCmd(), c.medalhasCreateCmd(), c.medalhasAlunoCmd())
	return cmd
}

func (c *cli) medalhasListCmd() *cobra.Command {
	var academiaID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List medals, optionally for one academia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Service().ListarMedalhas(cmd.Context(), gtjiu.Filter{gtjiu.F("academia_id", academiaID)})
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().StringVar(&academiaID, "academia-id", "", "academia id")
	return cmd
}

func (c *cli) medalhasCreateCmd() *cobra.Command {
	var (
		in          gtjiu.MedalhaInput
		data        string
		comprovante string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a medal (requires login)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.app.RequireToken()
			if err != nil {
				return err
			}
			day, err := gtjiu.ParseDate(data)
			if err != nil {
				return err
			}
			in.DataEvento = day
			if comprovante != "" {
				in.ComprovanteDescricao = &comprovante
			}
			out, err := c.app.Service().CriarMedalha(cmd.Context(), token, in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&in.AcademiaID, "academia-id", 0, "academia id")
	fl.StringVar(&in.Faixa, "faixa", "", "belt")
	fl.StringVar(&in.Sexo, "sexo", "", "M or F")
	fl.StringVar(&in.CategoriaPeso, "categoria-peso", "", "weight class")
	fl.StringVar(&in.TipoMedalha, "tipo", "", "ouro, prata or bronze")
	fl.StringVar(&in.Campeonato, "campeonato", "", "championship")
	fl.StringVar(&in.CidadeEvento, "cidade-evento", "", "event city")
	fl.StringVar(&data, "data", "", "event date (YYYY-MM-DD)")
	fl.StringVar(&comprovante, "comprovante", "", "proof description")
	markRequired(cmd, "academia-id", "tipo", "data")
	return cmd
}

func (c *cli) medalhasAlunoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aluno <aluno-id>",
		Short: "List a student's medals (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.app.RequireToken()
			if err != nil {
				return err
			}
			out, err := c.app.Service().MedalhasDoAluno(cmd.Context(), token, args[0])
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
}
