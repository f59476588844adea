package drive

import (
	"context"
	"fmt"
	"io"
	"os"

	gdrive "google.golang.org/api/drive/v3"
	goption "google.golang.org/api/option"
)

// The merchant's workbook lives in Google Sheets; exporting it as
// .xlsx keeps the conversion step identical to a locally produced
// workbook.
const xlsxMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Fetcher downloads the source spreadsheet from Google Drive.
type Fetcher struct {
	svc *gdrive.Service
}

// NewFetcher builds a read-only Drive client. With an empty
// credentials path, Application Default Credentials apply.
func NewFetcher(ctx context.Context, credentialsFile string) (*Fetcher, error) {
	opts := []goption.ClientOption{goption.WithScopes(gdrive.DriveReadonlyScope)}
	if credentialsFile != "" {
		opts = append(opts, goption.WithCredentialsFile(credentialsFile))
	}

	svc, err := gdrive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Fetcher{svc: svc}, nil
}

// Fetch exports the spreadsheet with the given file ID as .xlsx and
// writes it to destPath.
func (f *Fetcher) Fetch(ctx context.Context, fileID, destPath string) error {
	resp, err := f.svc.Files.Export(fileID, xlsxMIMEType).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to export spreadsheet %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return out.Close()
}
