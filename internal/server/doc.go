// Package server wires and runs the application's transport server.
//
// It owns the HTTP server lifecycle, including startup, signal handling,
// and graceful shutdown.
package server
