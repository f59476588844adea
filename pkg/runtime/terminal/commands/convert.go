package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/services/config"
	"github.com/ventas-tools/sales-atlas/pkg/services/excel"
)

type ConvertCmd struct {
	profilePath string
	inPath      string
	sheet       string
	outPath     string
	logger      zerolog.Logger
}

func NewConvertCmd(logger zerolog.Logger) *cobra.Command {
	cc := &ConvertCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Extract the sales worksheet from a workbook into CSV",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profile", "", "Path to the profile file")
	cmd.Flags().StringVar(&cc.inPath, "in", "", "Source .xlsx workbook")
	cmd.Flags().StringVar(&cc.sheet, "sheet", "", "Worksheet name (defaults to the profile's sheet_name)")
	cmd.Flags().StringVar(&cc.outPath, "out", "", "Destination CSV (defaults to the profile's sales_file)")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func (cc *ConvertCmd) run(_ *cobra.Command, _ []string) error {
	profile, err := config.LoadProfile(cc.profilePath)
	if err != nil {
		return err
	}

	sheet := cc.sheet
	if sheet == "" {
		sheet = profile.SheetName
	}
	out := cc.outPath
	if out == "" {
		out = profile.SalesFile
	}

	return excel.NewConverter(cc.logger).Convert(cc.inPath, sheet, out)
}
