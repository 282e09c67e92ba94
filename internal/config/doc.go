// Package config resolves the Review Automation System configuration.
//
// Values are read once from VITE_* environment variables and exposed as an
// immutable Config. Every field has a fallback, so resolution never fails.
// The Is*Configured predicates are string heuristics that catch the
// placeholder values shipped in the example .env file; they do not contact
// the services.
package config
