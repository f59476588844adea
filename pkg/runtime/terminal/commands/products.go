package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/services/analysis"
)

type ProductsCmd struct {
	profilePath string
	format      string
	outPath     string
	registry    reporters.Registry
	logger      zerolog.Logger
}

func NewProductsCmd(registry reporters.Registry, logger zerolog.Logger) *cobra.Command {
	pc := &ProductsCmd{registry: registry, logger: logger}
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Rank product quantities per month and all-time",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profilePath, "profile", "", "Path to the profile file")
	cmd.Flags().StringVar(&pc.format, "format", "text", "Report format (text or html)")
	cmd.Flags().StringVar(&pc.outPath, "out", "", "Write the report to a file instead of stdout")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (pc *ProductsCmd) run(cmd *cobra.Command, _ []string) error {
	// Quantity aggregation never resolves profit, so a broken or
	// missing gain list must not block this report.
	in, err := loadInputs(pc.logger, pc.profilePath, false)
	if err != nil {
		return err
	}

	report := analysis.NewAnalyzer(pc.logger).ProductSales(in.rows)

	w, closeOut, err := openOutput(pc.outPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	reporter, err := pc.registry.Create(pc.format, w, reporters.Options{Locale: in.profile.Locale})
	if err != nil {
		return err
	}
	if err := reporter.ProductReport(report); err != nil {
		return err
	}
	return closeOut()
}
