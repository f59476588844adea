package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/charts"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/services/analysis"
)

type ChartCmd struct {
	profilePath string
	outPath     string
	logger      zerolog.Logger
}

func NewChartCmd(logger zerolog.Logger) *cobra.Command {
	cc := &ChartCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the monthly price/profit bar chart as SVG",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profile", "", "Path to the profile file")
	cmd.Flags().StringVar(&cc.outPath, "out", "", "Destination .svg file")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (cc *ChartCmd) run(_ *cobra.Command, _ []string) error {
	in, err := loadInputs(cc.logger, cc.profilePath, true)
	if err != nil {
		return err
	}

	report := analysis.NewAnalyzer(cc.logger).MonthlyTotals(in.rows, in.table)

	f, err := os.Create(cc.outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cc.outPath, err)
	}

	title := reporters.Locale(in.profile.Locale).MonthlyTitle
	if err := charts.NewRenderer().RenderBars(title, report.ChartEntries(), f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
