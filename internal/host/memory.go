package host

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// DefaultURL seeds a memory host created without a location.
const DefaultURL = "http://localhost/"

// Memory is a host whose location lives in process. It behaves like a browser
// tab: mutations rewrite the query string in place, same-context links
// navigate, and new-context links are recorded without navigating.
type Memory struct {
	mu      sync.RWMutex
	loc     *url.URL
	params  []Param
	history []string
	opened  []string
}

// NewMemory creates a memory host positioned at rawURL.
func NewMemory(rawURL string) (*Memory, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	loc, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	return &Memory{
		loc:    loc,
		params: parseQuery(loc.RawQuery),
	}, nil
}

// FromURL creates a memory host from an already parsed location. The URL is
// copied.
func FromURL(loc *url.URL) *Memory {
	cp := *loc
	return &Memory{
		loc:    &cp,
		params: parseQuery(cp.RawQuery),
	}
}

func (m *Memory) Kind() Kind {
	return KindMemory
}

func (m *Memory) Path(full bool) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if full {
		return m.loc.String()
	}
	bare := *m.loc
	bare.RawQuery = ""
	bare.ForceQuery = false
	bare.Fragment = ""
	bare.RawFragment = ""
	return bare.String()
}

func (m *Memory) Params() []Param {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Param, len(m.params))
	copy(out, m.params)
	return out
}

func (m *Memory) SetParam(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params = setParam(m.params, name, value)
	m.loc.RawQuery = encodeQuery(m.params)
}

func (m *Memory) DeleteParam(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.params = deleteParam(m.params, name)
	m.loc.RawQuery = encodeQuery(m.params)
}

func (m *Memory) Hash() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.loc.Fragment
}

// SetHash accepts the value with or without its leading '#', as
// location.hash does.
func (m *Memory) SetHash(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loc.Fragment = strings.TrimPrefix(value, "#")
	m.loc.RawFragment = ""
}

// OpenLink resolves target against the current location. Without newContext
// the host navigates to it; with newContext it is only recorded in Opened.
func (m *Memory) OpenLink(target string, newContext bool) error {
	ref, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", target, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	resolved := m.loc.ResolveReference(ref)
	if newContext {
		m.opened = append(m.opened, resolved.String())
		return nil
	}

	m.history = append(m.history, m.loc.String())
	m.loc = resolved
	m.params = parseQuery(resolved.RawQuery)
	return nil
}

// History returns the locations navigated away from, oldest first.
func (m *Memory) History() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.history...)
}

// Opened returns the links requested in a new context, oldest first.
func (m *Memory) Opened() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.opened...)
}
