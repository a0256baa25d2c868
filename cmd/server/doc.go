// Package main runs the urlargs location service.
//
// The service exposes the query string to argument vector translation over
// HTTP: /echo/*path reflects the request URL as an argument vector, /parse
// classifies a token, and /services/execute drives in-memory location
// sessions through the location service tools.
//
// Configuration:
//   - Environment variables (see internal/infrastructure/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 8000 -max-sessions 256
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
