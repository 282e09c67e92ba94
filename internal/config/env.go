package config

import (
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// EnvPrefix is shared with the frontend build so one .env file serves both.
const EnvPrefix = "VITE"

// Env is the raw environment snapshot. All fields are strings so that
// processing cannot fail on malformed values. Keys come from split_words:
// an envconfig tag would also match the unprefixed name.
type Env struct {
	SupabaseURL        string `split_words:"true"`
	SupabaseAnonKey    string `split_words:"true"`
	NetlifyAPIKey      string `split_words:"true"`
	SheetsWebappURL    string `split_words:"true"`
	SheetsSharedSecret string `split_words:"true"`
	AppName            string `split_words:"true"`
	AppDescription     string `split_words:"true"`
	DevMode            string `split_words:"true"`
}

// ReadEnv snapshots the configuration variables under prefix. On a
// processing error it logs and returns the zero Env, which resolves to
// all fallbacks.
func ReadEnv(prefix string) Env {
	var env Env
	if err := envconfig.Process(prefix, &env); err != nil {
		log.WithFields(log.Fields{
			"component": "config",
			"prefix":    prefix,
			"error":     err,
		}).Warn("failed to read environment, using defaults")
		return Env{}
	}
	return env
}
