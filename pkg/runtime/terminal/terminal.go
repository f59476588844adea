package terminal

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	registry reporters.Registry
	logger   zerolog.Logger
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry reporters.Registry
	Logger   zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	cli := &CLI{
		registry: opts.Registry,
		logger:   opts.Logger,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ventas",
		Short: "Sales analysis and reporting tool",
	}

	cmd.AddCommand(commands.NewReportCmd(cli.registry, cli.logger))
	cmd.AddCommand(commands.NewProductsCmd(cli.registry, cli.logger))
	cmd.AddCommand(commands.NewWeeklyCmd(cli.registry, cli.logger))
	cmd.AddCommand(commands.NewChartCmd(cli.logger))
	cmd.AddCommand(commands.NewFetchCmd(cli.logger))
	cmd.AddCommand(commands.NewConvertCmd(cli.logger))

	return cmd
}
