package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile is the per-merchant YAML configuration: where the source
// files live, how reports are localized, and how the acquisition
// pipeline reaches the upstream spreadsheet.
type Profile struct {
	SalesFile       string `mapstructure:"sales_file" validate:"required"`
	GainsFile       string `mapstructure:"gains_file" validate:"required"`
	Locale          string `mapstructure:"locale"`
	SheetName       string `mapstructure:"sheet_name"`
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
	ServerAddr      string `mapstructure:"server_addr"`
}

// LoadProfile reads and validates the profile at path.
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("locale", "es")
	v.SetDefault("sheet_name", "Ventas")
	v.SetDefault("server_addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if profile.SalesFile == "" {
		return nil, fmt.Errorf("profile %s is missing sales_file", path)
	}
	if profile.GainsFile == "" {
		return nil, fmt.Errorf("profile %s is missing gains_file", path)
	}
	return &profile, nil
}
