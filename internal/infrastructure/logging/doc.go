// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Logs go to stderr by default so that command output on stdout stays
// machine readable.
//
// Example Usage:
//
//	logger := logging.FromLevel(cfg.Logging.Level, cfg.Logging.Development)
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Warn("Failed to open url", zap.Error(err))
package logging
