package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ventas-tools/sales-atlas/pkg/handlers/report"
	"github.com/ventas-tools/sales-atlas/pkg/server"
	"github.com/ventas-tools/sales-atlas/pkg/services/config"
)

var profilePath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the sales reports over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "profile", "p", "profile.yaml",
		"Path to the profile file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = profile.ServerAddr
	}

	logger.Info().
		Str("sales_file", profile.SalesFile).
		Str("gains_file", profile.GainsFile).
		Str("locale", profile.Locale).
		Msgf("profile `%s` loaded", profilePath)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports: report.NewHandler(profile),
		},
	})

	return api.Start()
}
