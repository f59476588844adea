package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/services/analysis"
)

type WeeklyCmd struct {
	profilePath string
	format      string
	outPath     string
	registry    reporters.Registry
	logger      zerolog.Logger
}

func NewWeeklyCmd(registry reporters.Registry, logger zerolog.Logger) *cobra.Command {
	wc := &WeeklyCmd{registry: registry, logger: logger}
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Detail this week's sales per day and product",
		RunE:  wc.run,
	}

	cmd.Flags().StringVar(&wc.profilePath, "profile", "", "Path to the profile file")
	cmd.Flags().StringVar(&wc.format, "format", "text", "Report format (text or html)")
	cmd.Flags().StringVar(&wc.outPath, "out", "", "Write the report to a file instead of stdout")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (wc *WeeklyCmd) run(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(wc.logger, wc.profilePath, true)
	if err != nil {
		return err
	}

	report := analysis.NewAnalyzer(wc.logger).WeeklySales(in.rows, in.table)

	w, closeOut, err := openOutput(wc.outPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	reporter, err := wc.registry.Create(wc.format, w, reporters.Options{Locale: in.profile.Locale})
	if err != nil {
		return err
	}
	if err := reporter.WeeklyReport(report); err != nil {
		return err
	}
	return closeOut()
}
