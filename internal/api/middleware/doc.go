// Package middleware provides HTTP middleware for the location service.
//
//   - CORS: cross-origin access via gin-contrib/cors, exposing the trace headers
//   - RateLimit: per-IP token buckets with idle client eviction
//   - GlobalRateLimit: one token bucket for the whole server
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
