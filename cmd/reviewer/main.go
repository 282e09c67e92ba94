package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/amaumene/reviewer/internal/app"
	"github.com/amaumene/reviewer/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultServerAddr = "0.0.0.0:3000"
	defaultLogLevel   = "info"
	defaultEnvFile    = ".env"
)

func main() {
	envFile := flag.String("env", defaultEnvFile, "dotenv file loaded before resolving configuration")
	check := flag.Bool("check", false, "print integration status as JSON and exit non-zero if any is not configured")
	addr := flag.String("addr", "", "status server listen address (default $SERVER_ADDR or "+defaultServerAddr+")")
	level := flag.String("log-level", "", "log level (default $LOG_LEVEL or "+defaultLogLevel+")")
	flag.Parse()

	if err := loadEnvFile(*envFile); err != nil {
		log.WithError(err).Fatal("failed to load env file")
	}

	logLevel := firstNonEmpty(*level, getEnvOrDefault("LOG_LEVEL", defaultLogLevel))

	if *check {
		ok, err := runCheck(os.Stdout, os.Stderr, logLevel)
		if err != nil {
			log.WithError(err).Fatal("failed to write status")
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	setupLogging(os.Stdout, logLevel)
	cfg := config.Current()

	serverAddr := firstNonEmpty(*addr, getEnvOrDefault("SERVER_ADDR", defaultServerAddr))
	if err := app.New(cfg, serverAddr).Run(context.Background()); err != nil {
		log.WithError(err).Fatal("application failed")
	}
}

// runCheck writes the status report to stdout. Logs, including the
// development status line, go to logs so stdout stays valid JSON.
func runCheck(stdout, logs io.Writer, level string) (bool, error) {
	setupLogging(logs, level)
	return writeStatus(stdout, config.Current())
}

func setupLogging(out io.Writer, level string) {
	log.SetOutput(out)
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("invalid log level, using info")
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("file", path).Debug("env file not found, skipping")
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

type checkReport struct {
	App      string        `json:"app"`
	Services config.Status `json:"services"`
	Ready    bool          `json:"ready"`
}

// writeStatus renders the integration status and reports whether every
// integration is configured.
func writeStatus(w io.Writer, cfg config.Config) (bool, error) {
	status := cfg.Status()
	report := checkReport{
		App:      cfg.App.Name,
		Services: status,
		Ready:    status.AllConfigured(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return false, fmt.Errorf("encoding status: %w", err)
	}
	return report.Ready, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
