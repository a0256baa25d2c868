// Package id generates the ULID-based identifiers used across urlargs.
//
// Identifiers are prefixed by kind so they stay readable in logs:
// sess_* for location sessions, req_* for HTTP requests, trace_* and
// span_* for tracing. ULIDs sort by creation time.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionID identifies a location session
type SessionID string

// RequestID identifies an API request
type RequestID string

// TraceID identifies a trace
type TraceID string

// SpanID identifies a span within a trace
type SpanID string

const (
	SessionPrefix = "sess"
	RequestPrefix = "req"
	TracePrefix   = "trace"
	SpanPrefix    = "span"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(Default().GenerateWithPrefix(SessionPrefix))
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewTraceID generates a new trace ID
func NewTraceID() TraceID {
	return TraceID(Default().GenerateWithPrefix(TracePrefix))
}

// NewSpanID generates a new span ID
func NewSpanID() SpanID {
	return SpanID(Default().GenerateWithPrefix(SpanPrefix))
}

func (id SessionID) String() string { return string(id) }
func (id RequestID) String() string { return string(id) }
func (id TraceID) String() string   { return string(id) }
func (id SpanID) String() string    { return string(id) }

// IsValid checks if an ID string is a valid ULID
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// Split separates a prefixed ID into its prefix and ULID parts.
func Split(prefixed string) (prefix string, raw string, ok bool) {
	prefix, raw, ok = strings.Cut(prefixed, "_")
	if !ok || prefix == "" || !IsValid(raw) {
		return "", "", false
	}
	return prefix, raw, true
}

// HasPrefix reports whether prefixed is a well-formed ID of the given kind.
func HasPrefix(prefixed, prefix string) bool {
	p, _, ok := Split(prefixed)
	return ok && p == prefix
}

// Timestamp extracts the creation time from a ULID, prefixed or not.
func Timestamp(id string) (time.Time, error) {
	if _, raw, ok := Split(id); ok {
		id = raw
	}
	parsed, err := ulid.Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
