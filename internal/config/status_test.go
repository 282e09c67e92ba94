package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestConfig_IsDatabaseConfigured(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		anonKey string
		want    bool
	}{
		{name: "empty url", url: "", anonKey: "key123", want: false},
		{name: "empty url and key", url: "", anonKey: "", want: false},
		{name: "empty anon key", url: "https://proj.supabase.co", anonKey: "", want: false},
		{name: "placeholder url", url: "your_supabase_project_url_here", anonKey: "x", want: false},
		{name: "not supabase", url: "https://example.com", anonKey: "k", want: false},
		{name: "valid", url: "https://abc.supabase.co", anonKey: "key123", want: true},
		{name: "loose substring match", url: "https://notreally.supabase.co.evil.com", anonKey: "k", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Database: Database{URL: tt.url, AnonKey: tt.anonKey}}
			if got := cfg.IsDatabaseConfigured(); got != tt.want {
				t.Errorf("IsDatabaseConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_IsDeploymentConfigured(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{name: "empty", apiKey: "", want: false},
		{name: "placeholder", apiKey: "your_netlify_api_key_here", want: false},
		{name: "real key", apiKey: "real-key-1", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Deployment: Deployment{APIKey: tt.apiKey}}
			if got := cfg.IsDeploymentConfigured(); got != tt.want {
				t.Errorf("IsDeploymentConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_IsSpreadsheetConfigured(t *testing.T) {
	tests := []struct {
		name      string
		webAppURL string
		want      bool
	}{
		{name: "script url without secret", webAppURL: "https://script.google.com/macros/abc", want: true},
		{name: "googleusercontent url", webAppURL: "https://script.googleusercontent.com/anything", want: true},
		{name: "empty", webAppURL: "", want: false},
		{name: "other host", webAppURL: "http://example.com", want: false},
		{name: "plain http script url", webAppURL: "http://script.google.com/macros/abc", want: false},
		{name: "missing trailing slash", webAppURL: "https://script.google.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Spreadsheet: Spreadsheet{WebAppURL: tt.webAppURL}}
			if got := cfg.IsSpreadsheetConfigured(); got != tt.want {
				t.Errorf("IsSpreadsheetConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	cfg := Config{
		Database:    Database{URL: "https://abc.supabase.co", AnonKey: "key123"},
		Deployment:  Deployment{APIKey: "your_netlify_api_key_here"},
		Spreadsheet: Spreadsheet{WebAppURL: "https://script.google.com/macros/abc"},
	}

	status := cfg.Status()
	want := Status{Database: true, Deployment: false, Spreadsheet: true}
	if status != want {
		t.Fatalf("Status() = %+v, want %+v", status, want)
	}
	if status.AllConfigured() {
		t.Error("AllConfigured() = true with deployment missing")
	}

	fields := status.Fields()
	expected := log.Fields{
		"supabase": statusConfigured,
		"netlify":  statusNotConfigured,
		"sheets":   statusConfigured,
	}
	for key, value := range expected {
		if fields[key] != value {
			t.Errorf("Fields()[%q] = %v, want %v", key, fields[key], value)
		}
	}
}

func TestLogStatus(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantEmitted bool
	}{
		{
			name:        "production mode is silent",
			cfg:         Config{App: App{IsDevelopment: false}},
			wantEmitted: false,
		},
		{
			name: "development mode logs status",
			cfg: Config{
				Database: Database{URL: "https://proj.supabase.co"},
				App:      App{IsDevelopment: true},
			},
			wantEmitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			emitted := LogStatus(logger, tt.cfg)
			if emitted != tt.wantEmitted {
				t.Errorf("LogStatus() = %v, want %v", emitted, tt.wantEmitted)
			}

			entries := hook.AllEntries()
			if !tt.wantEmitted {
				if len(entries) != 0 {
					t.Errorf("got %d log entries, want 0", len(entries))
				}
				return
			}

			if len(entries) != 1 {
				t.Fatalf("got %d log entries, want 1", len(entries))
			}
			entry := entries[0]
			if entry.Level != log.InfoLevel {
				t.Errorf("level = %v, want info", entry.Level)
			}
			if entry.Data["supabase"] != statusNotConfigured {
				t.Errorf("supabase = %v, want %q", entry.Data["supabase"], statusNotConfigured)
			}
			if entry.Data["netlify"] != statusNotConfigured {
				t.Errorf("netlify = %v, want %q", entry.Data["netlify"], statusNotConfigured)
			}
		})
	}
}
