// Package server wires and runs the gateway's HTTP server lifecycle:
// startup, signal handling, and graceful shutdown.
package server
