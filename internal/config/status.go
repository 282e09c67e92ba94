package config

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	supabasePlaceholderURL = "your_supabase_project_url_here"
	supabaseDomain         = "supabase.co"
	netlifyPlaceholderKey  = "your_netlify_api_key_here"

	sheetsContentPrefix = "https://script.googleusercontent.com/"
	sheetsScriptPrefix  = "https://script.google.com/"

	statusConfigured    = "✅ Configured"
	statusNotConfigured = "❌ Not configured"
)

// IsDatabaseConfigured reports whether the Supabase settings look usable.
// Any URL containing "supabase.co" passes, wherever it appears.
func (c Config) IsDatabaseConfigured() bool {
	return c.Database.URL != "" &&
		c.Database.AnonKey != "" &&
		c.Database.URL != supabasePlaceholderURL &&
		strings.Contains(c.Database.URL, supabaseDomain)
}

func (c Config) IsDeploymentConfigured() bool {
	return c.Deployment.APIKey != "" && c.Deployment.APIKey != netlifyPlaceholderKey
}

// IsSpreadsheetConfigured reports whether the web app URL points at Apps Script.
// The non-empty guard only applies to the googleusercontent branch.
func (c Config) IsSpreadsheetConfigured() bool {
	url := c.Spreadsheet.WebAppURL
	return (url != "" && strings.HasPrefix(url, sheetsContentPrefix)) ||
		strings.HasPrefix(url, sheetsScriptPrefix)
}

// Status is a snapshot of the three integration checks.
type Status struct {
	Database    bool `json:"database"`
	Deployment  bool `json:"deployment"`
	Spreadsheet bool `json:"spreadsheet"`
}

func (c Config) Status() Status {
	return Status{
		Database:    c.IsDatabaseConfigured(),
		Deployment:  c.IsDeploymentConfigured(),
		Spreadsheet: c.IsSpreadsheetConfigured(),
	}
}

// AllConfigured reports whether every integration passed its check.
func (s Status) AllConfigured() bool {
	return s.Database && s.Deployment && s.Spreadsheet
}

// Fields renders the status for structured logging.
func (s Status) Fields() log.Fields {
	return log.Fields{
		"supabase": describe(s.Database),
		"netlify":  describe(s.Deployment),
		"sheets":   describe(s.Spreadsheet),
	}
}

// LogStatus logs the configuration status when cfg is in development mode
// and reports whether it did. A nil logger means the standard logger.
func LogStatus(logger log.FieldLogger, cfg Config) bool {
	if !cfg.App.IsDevelopment {
		return false
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	logger.WithFields(cfg.Status().Fields()).Info("Configuration Status")
	return true
}

// startupLogger returns the standard logger, or an info-level copy of it
// when the configured level would drop the status line.
func startupLogger() log.FieldLogger {
	std := log.StandardLogger()
	if std.IsLevelEnabled(log.InfoLevel) {
		return std
	}

	logger := log.New()
	logger.SetOutput(std.Out)
	logger.SetFormatter(std.Formatter)
	logger.ReplaceHooks(std.Hooks)
	logger.SetLevel(log.InfoLevel)
	return logger
}

func describe(configured bool) string {
	if configured {
		return statusConfigured
	}
	return statusNotConfigured
}
