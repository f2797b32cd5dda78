// Package config loads the process configuration from the environment,
// honoring a local .env file during development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the bot needs at startup. All of it is read-only
// after Load returns.
type Config struct {
	TelegramToken    string
	GeminiModel      string
	SpreadsheetID    string
	CredentialsFile  string
	NotionToken      string
	NotionFinancesDB string
	FieldSet         string
	HealthAddr       string
	Location         *time.Location
}

// Load reads the configuration. Missing required variables are reported
// together so a broken deployment fails with one actionable message.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiModel:      envDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		SpreadsheetID:    os.Getenv("SHEETS_SPREADSHEET_ID"),
		CredentialsFile:  envDefault("GOOGLE_SA_JSON", "./service_account.json"),
		NotionToken:      os.Getenv("NOTION_TOKEN"),
		NotionFinancesDB: os.Getenv("FINANCES_PAGE_TABLE"),
		FieldSet:         envDefault("FIELD_SET", "gastos"),
		HealthAddr:       envDefault("HEALTH_ADDR", ":8080"),
	}

	var missing []string
	for name, value := range map[string]string{
		"TELEGRAM_BOT_TOKEN":    cfg.TelegramToken,
		"SHEETS_SPREADSHEET_ID": cfg.SpreadsheetID,
		"NOTION_TOKEN":          cfg.NotionToken,
		"FINANCES_PAGE_TABLE":   cfg.NotionFinancesDB,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	tz := envDefault("TZ", "America/Bogota")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", tz, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// EnsureCredentialsFile materializes the service-account JSON from the
// SERVICE_ACCOUNT_JSON variable when the credentials file is absent or
// empty, for platforms that only pass secrets through the environment.
func (c *Config) EnsureCredentialsFile() error {
	raw := os.Getenv("SERVICE_ACCOUNT_JSON")
	if raw == "" {
		return nil
	}

	if info, err := os.Stat(c.CredentialsFile); err == nil && info.Size() > 0 {
		return nil
	}
	if err := os.WriteFile(c.CredentialsFile, []byte(raw), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", c.CredentialsFile, err)
	}
	return nil
}

func envDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
