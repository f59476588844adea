package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ventas-tools/sales-atlas/pkg/services/config"
	"github.com/ventas-tools/sales-atlas/pkg/services/drive"
)

type FetchCmd struct {
	profilePath string
	fileID      string
	outPath     string
	logger      zerolog.Logger
}

func NewFetchCmd(logger zerolog.Logger) *cobra.Command {
	fc := &FetchCmd{logger: logger}
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the sales spreadsheet from Google Drive",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.profilePath, "profile", "", "Path to the profile file")
	cmd.Flags().StringVar(&fc.fileID, "file-id", "", "Drive file ID (defaults to the profile's spreadsheet_id)")
	cmd.Flags().StringVar(&fc.outPath, "out", "ventas.xlsx", "Destination .xlsx file")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (fc *FetchCmd) run(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	profile, err := config.LoadProfile(fc.profilePath)
	if err != nil {
		return err
	}

	fileID := fc.fileID
	if fileID == "" {
		fileID = profile.SpreadsheetID
	}
	if fileID == "" {
		return fmt.Errorf("no spreadsheet to fetch: set --file-id or spreadsheet_id in the profile")
	}

	fetcher, err := drive.NewFetcher(ctx, profile.CredentialsFile)
	if err != nil {
		return err
	}
	if err := fetcher.Fetch(ctx, fileID, fc.outPath); err != nil {
		return err
	}

	fc.logger.Info().Str("file_id", fileID).Str("dest", fc.outPath).Msg("spreadsheet downloaded")
	return nil
}
