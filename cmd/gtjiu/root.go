package main

import (
	"fmt"

	"github.com/aurevix/gtjiu-client/internal/app"
	"github.com/aurevix/gtjiu-client/internal/config"
	"github.com/aurevix/gtjiu-client/internal/logger"
	"github.com/aurevix/gtjiu-client/internal/output"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	token    string
	output   string
	profile  string
	logLevel string
}

// cli holds state shared by every subcommand for one invocation.
type cli struct {
	loadConfig func() (*config.Config, error)
	flags      globalFlags
	app        *app.App
	printer    *output.Printer
}

func newCLI(load func() (*config.Config, error)) *cli {
	return &cli{loadConfig: load}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gtjiu",
		Short:         "Client for the GT Jiu API",
		Long:          `gtjiu talks to the GT Jiu backend: accounts, academias, medalhas, rankings and avisos.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.token, "token", "", "bearer token (defaults to the stored session)")
	pf.StringVarP(&c.flags.output, "output", "o", "", "output format: json or yaml")
	pf.StringVar(&c.flags.profile, "profile", "", "named API profile from the profiles file")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.loginProfessorCmd(),
		c.loginAlunoCmd(),
		c.logoutCmd(),
		c.categoriaCmd(),
		c.academiasCmd(),
		c.medalhasCmd(),
		c.rankingCmd(),
		c.avisosCmd(),
		c.requestCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.flags.output != "" {
		cfg.OutputFormat = c.flags.output
	}
	if c.flags.logLevel != "" {
		cfg.LogLevel = c.flags.logLevel
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.DebugObj("gtjiu starting", "config", cfg)

	printer, err := output.NewPrinter(cmd.OutOrStdout(), cfg.OutputFormat)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, log, app.Options{Profile: c.flags.profile, Token: c.flags.token})
	if err != nil {
		return err
	}
	c.app = a
	c.printer = printer
	return nil
}

func (c *cli) close() {
	if c.app != nil {
		_ = c.app.Close()
	}
	_ = logger.Close()
}

func (c *cli) print(v any) error {
	return c.printer.Print(v)
}
