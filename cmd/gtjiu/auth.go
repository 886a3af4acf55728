package main

import (
	"fmt"

	"github.com/aurevix/gtjiu-client/pkg/gtjiu"
	"github.com/spf13/cobra"
)

func (c *cli) registerCmd() *cobra.Command {
	var in gtjiu.NewUser
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store its session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.app.Service().Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := c.app.SaveSession(sess.Token); err != nil {
				return err
			}
			return c.print(sess)
		},
	}
	cmd.Flags().StringVar(&in.Nome, "nome", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "e-mail")
	cmd.Flags().StringVar(&in.Senha, "senha", "", "password")
	markRequired(cmd, "nome", "email", "senha")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var in gtjiu.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with e-mail and password and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.app.Service().Login(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := c.app.SaveSession(sess.Token); err != nil {
				return err
			}
			return c.print(sess)
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "e-mail")
	cmd.Flags().StringVar(&in.Senha, "senha", "", "password")
	markRequired(cmd, "email", "senha")
	return cmd
}

func (c *cli) loginProfessorCmd() *cobra.Command {
	var email, senha string
	cmd := &cobra.Command{
		Use:   "login-professor",
		Short: "Log in as a professor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Service().LoginProfessor(cmd.Context(), email, senha)
			if err != nil {
				return err
			}
			return c.saveAndPrint(out)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "e-mail")
	cmd.Flags().StringVar(&senha, "senha", "", "password")
	markRequired(cmd, "email", "senha")
	return cmd
}

func (c *cli) loginAlunoCmd() *cobra.Command {
	var codigo, senha string
	cmd := &cobra.Command{
		Use:   "login-aluno",
		Short: "Log in as a student with the enrollment code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Service().LoginAluno(cmd.Context(), codigo, senha)
			if err != nil {
				return err
			}
			return c.saveAndPrint(out)
		},
	}
	cmd.Flags().StringVar(&codigo, "codigo", "", "enrollment code")
	cmd.Flags().StringVar(&senha, "senha", "", "password")
	markRequired(cmd, "codigo", "senha")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session for the current API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.ClearSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "session cleared")
			return nil
		},
	}
}

// saveAndPrint stores a token found in a loosely shaped login response.
func (c *cli) saveAndPrint(out any) error {
	if obj, ok := out.(map[string]any); ok {
		for _, key := range []string{"token", "access_token"} {
			if tok, ok := obj[key].(string); ok && tok != "" {
				if err := c.app.SaveSession(tok); err != nil {
					return err
				}
				break
			}
		}
	}
	return c.print(out)
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, n := range names {
		_ = cmd.MarkFlagRequired(n)
	}
}
