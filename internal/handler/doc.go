// Package handler implements the HTTP status endpoints.
//
// This package provides:
// - /health: liveness check
// - /api/config/status: which integrations are configured
//
// Responses only carry booleans and application metadata; keys, secrets
// and service URLs are never rendered.
package handler
