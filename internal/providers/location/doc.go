// Package location provides the "location" service: server-side sessions,
// each holding an in-memory location that callers inspect and edit through
// the argument-token interface.
//
// Tools:
//   - location.create, location.close: session lifecycle
//   - location.params: path followed by one token per query parameter
//   - location.parse: classify a single token
//   - location.set, location.delete: edit query parameters
//   - location.path, location.hash, location.setHash: navigation state
//   - location.open: follow a link, in place or in a new context
//
// Sessions are addressed with the session_id parameter or, failing that,
// the session in the execution context.
package location
