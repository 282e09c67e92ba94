// Package app provides application initialization and lifecycle management.
//
// The App type wires the resolved configuration into the HTTP status
// server and manages graceful shutdown on SIGINT/SIGTERM or context
// cancellation.
package app
