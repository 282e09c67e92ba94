package config

import (
	"sync"
)

const (
	defaultAppName        = "Review Automation System"
	defaultAppDescription = "Streamline your reviews"

	// devModeEnabled is the only raw value that turns development mode on.
	devModeEnabled = "true"
)

type Config struct {
	Database    Database
	AI          AI
	Deployment  Deployment
	Spreadsheet Spreadsheet
	App         App
}

// Database holds the Supabase project settings.
type Database struct {
	URL     string
	AnonKey string
}

// AI is intentionally empty: provider keys are stored per card, not per process.
type AI struct{}

// Deployment holds the Netlify settings.
type Deployment struct {
	APIKey string
}

// Spreadsheet holds the Google Sheets Apps Script web app settings.
type Spreadsheet struct {
	WebAppURL    string
	SharedSecret string
}

type App struct {
	Name          string
	Description   string
	IsDevelopment bool
}

// Resolve builds a Config from a raw environment snapshot.
func Resolve(env Env) Config {
	return Config{
		Database: Database{
			URL:     env.SupabaseURL,
			AnonKey: env.SupabaseAnonKey,
		},
		Deployment: Deployment{
			APIKey: env.NetlifyAPIKey,
		},
		Spreadsheet: Spreadsheet{
			WebAppURL:    env.SheetsWebappURL,
			SharedSecret: env.SheetsSharedSecret,
		},
		App: App{
			Name:          valueOrDefault(env.AppName, defaultAppName),
			Description:   valueOrDefault(env.AppDescription, defaultAppDescription),
			IsDevelopment: env.DevMode == devModeEnabled,
		},
	}
}

// Load resolves the configuration from the process environment.
func Load() Config {
	return Resolve(ReadEnv(EnvPrefix))
}

var (
	current     Config
	currentOnce sync.Once
)

// Current returns the process-wide configuration, resolving it on first use.
// The development status line is logged during that first resolution only,
// whatever the configured log level.
func Current() Config {
	currentOnce.Do(func() {
		current = Load()
		LogStatus(startupLogger(), current)
	})
	return current
}

func valueOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
