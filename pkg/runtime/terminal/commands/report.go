package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/services/analysis"
)

type ReportCmd struct {
	profilePath string
	format      string
	outPath     string
	registry    reporters.Registry
	logger      zerolog.Logger
}

func NewReportCmd(registry reporters.Registry, logger zerolog.Logger) *cobra.Command {
	rc := &ReportCmd{registry: registry, logger: logger}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate monthly prices and profits",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profilePath, "profile", "", "Path to the profile file")
	cmd.Flags().StringVar(&rc.format, "format", "text", "Report format (text or html)")
	cmd.Flags().StringVar(&rc.outPath, "out", "", "Write the report to a file instead of stdout")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(rc.logger, rc.profilePath, true)
	if err != nil {
		return err
	}

	report := analysis.NewAnalyzer(rc.logger).MonthlyTotals(in.rows, in.table)

	w, closeOut, err := openOutput(rc.outPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	reporter, err := rc.registry.Create(rc.format, w, reporters.Options{Locale: in.profile.Locale})
	if err != nil {
		return err
	}
	if err := reporter.MonthlyReport(report); err != nil {
		return err
	}
	return closeOut()
}
