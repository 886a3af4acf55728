package main

import "github.com/spf13/cobra"

func (c *cli) rankingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Medal rankings",
	}
	cmd.AddCommand(c.rankingAcademiasCmd(), c.rankingProfessorCmd())
	return cmd
}

func (c *cli) rankingAcademiasCmd() *cobra.Command {
	var filters map[string]string
	cmd := &cobra.Command{
		Use:   "academias",
		Short: "Rank academias by medal count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Service().RankingAcademias(cmd.Context(), filterFlag(filters))
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "extra query filters (key=value)")
	return cmd
}

func (c *cli) rankingProfessorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "professor <professor-id>",
		Short: "Ranking for a professor's students (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.app.RequireToken()
			if err != nil {
				return err
			}
			out, err := c.app.Service().RankingProfessor(cmd.Context(), token, args[0])
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
}
