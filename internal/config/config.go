package config

import (
	"fmt"
	"os"
	"strconv"

	"edusight/domain/assessment"
)

// Config represents the complete application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Data       DataConfig
	Thresholds assessment.Thresholds
}

// DatabaseConfig holds database connection settings. URL may be empty, in
// which case snapshots are kept in memory only.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	UIPort  string
	GinMode string
}

// DataConfig holds data file settings
type DataConfig struct {
	UploadDir string
	ExcelFile string
}

// Load reads configuration from environment variables, layering threshold
// overrides on top of the default classification policy.
func Load() (*Config, error) {
	thresholds, err := loadThresholds()
	if err != nil {
		return nil, fmt.Errorf("failed to load threshold overrides: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			UIPort:  getEnvOrDefault("UI_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			UploadDir: getEnvOrDefault("UPLOAD_DIR", "./uploads"),
			ExcelFile: getEnvOrDefault("EXCEL_FILE", ""),
		},
		Thresholds: thresholds,
	}, nil
}

// Threshold override variables. Unset variables keep the default policy.
var thresholdVars = []struct {
	key   string
	apply func(*assessment.Thresholds, float64)
}{
	{"THRESHOLD_ATTITUDINAL_RISK", func(t *assessment.Thresholds, v float64) { t.AttitudinalRisk = v }},
	{"THRESHOLD_ATTITUDINAL_STRENGTH", func(t *assessment.Thresholds, v float64) { t.AttitudinalStrength = v }},
	{"THRESHOLD_STANINE_WEAKNESS", func(t *assessment.Thresholds, v float64) { t.StanineWeakness = v }},
	{"THRESHOLD_STANINE_STRENGTH", func(t *assessment.Thresholds, v float64) { t.StanineStrength = v }},
	{"THRESHOLD_SAS_RISK", func(t *assessment.Thresholds, v float64) { t.SASRisk = v }},
	{"THRESHOLD_SAS_STRENGTH", func(t *assessment.Thresholds, v float64) { t.SASStrength = v }},
	{"THRESHOLD_SIGNIFICANT_PERCENTILE", func(t *assessment.Thresholds, v float64) { t.SignificantPercentile = v }},
	{"THRESHOLD_SIGNIFICANT_STANINE", func(t *assessment.Thresholds, v float64) { t.SignificantStanine = v }},
	{"THRESHOLD_RISK_HIGH", func(t *assessment.Thresholds, v float64) { t.RiskHigh = v }},
	{"THRESHOLD_RISK_MEDIUM", func(t *assessment.Thresholds, v float64) { t.RiskMedium = v }},
	{"THRESHOLD_RISK_BORDERLINE", func(t *assessment.Thresholds, v float64) { t.RiskBorderline = v }},
	{"THRESHOLD_POTENTIAL_GAP", func(t *assessment.Thresholds, v float64) { t.PotentialGap = v }},
}

func loadThresholds() (assessment.Thresholds, error) {
	thresholds := assessment.DefaultThresholds()
	for _, tv := range thresholdVars {
		raw := os.Getenv(tv.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return thresholds, fmt.Errorf("invalid %s %q: %w", tv.key, raw, err)
		}
		tv.apply(&thresholds, v)
	}
	return thresholds, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
