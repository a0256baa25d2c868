// Package http provides the HTTP handlers of the location service.
//
// Endpoints:
//   - Health: / and /health
//   - Echo: /echo/*path, the request URL as an argument vector
//   - Parse: /parse?token=
//   - Services: /services, /services/execute
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, provider.Sessions(), http.NewHandlerMetrics(metrics), tracer, logger)
//	router.GET("/echo/*path", handlers.Echo)
package http
