package main

import (
	"sort"

	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
	"github.com/spf13/cobra"
)

func (c *cli) avisosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avisos",
		Short: "Announcements",
	}
	cmd.AddCommand(c.avisosListCmd(), c.avisosCreateCmd(), c.avisosProfessorCmd())
	return cmd
}

func (c *cli) avisosListCmd() *cobra.Command {
	var filters map[string]string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.app.Token()
			if err != nil {
				return err
			}
			out, err := c.app.Service().ListarAvisos(cmd.Context(), token, filterFlag(filters))
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().StringToStringVar(&filters, "filter", nil, "query filters (key=value)")
	return cmd
}

func (c *cli) avisosCreateCmd() *cobra.Command {
	var in gtjiu.AvisoInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post an announcement (requires login)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := c.app.RequireToken()
			if err != nil {
				return err
			}
			out, err := c.app.Service().CriarAviso(cmd.Context(), token, in)
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
	cmd.Flags().StringVar(&in.Titulo, "titulo", "", "title")
	cmd.Flags().StringVar(&in.Texto, "texto", "", "body")
	markRequired(cmd, "titulo", "texto")
	return cmd
}

func (c *cli) avisosProfessorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "professor <professor-id>",
		Short: "List a professor's announcements (requires login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.app.RequireToken()
			if err != nil {
				return err
			}
			out, err := c.app.Service().ListarAvisosProfessor(cmd.Context(), token, args[0])
			if err != nil {
				return err
			}
			return c.print(out)
		},
	}
}

// filterFlag turns a key=value flag map into a filter. Flag maps are
// unordered, so keys are sorted to keep the query stable.
func filterFlag(m map[string]string) gtjiu.Filter {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return gtjiu.FilterFromMap(m, keys...)
}
