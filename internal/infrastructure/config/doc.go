// Package config loads urlargs configuration from the environment.
//
// Every field has a default, so an empty environment yields a working
// configuration. Command-line flags in cmd/ override these values.
//
// Environment:
//   - PORT, HOST, MAX_SESSIONS: HTTP location service
//   - URLARGS_HOST: auto, browser, native or memory
//   - URLARGS_URL: starting location of a memory host
//   - URLARGS_OPEN_COMMAND: command used instead of the default browser
//   - LOG_LEVEL, LOG_DEV: logging
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED: rate limiting
package config
