// Package types holds the data structures shared by the service registry,
// the providers and the HTTP layer.
//
// Core Types:
//   - Service, Tool, Parameter: provider definitions
//   - Context: caller information for a tool execution
//   - Result: standard tool result
//
// Request Types:
//   - ExecuteRequest: service tool execution
//   - ParseResponse: a classified argument token
package types
