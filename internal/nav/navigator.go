package nav

import (
	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/host"
)

// Navigator is a stateless facade over a host's location.
type Navigator struct {
	host   host.Host
	logger *zap.Logger
	onFail func(url string, err error)
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used to report link failures.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithFailureHook registers fn to run after each failed OpenLink.
func WithFailureHook(fn func(url string, err error)) Option {
	return func(n *Navigator) {
		n.onFail = fn
	}
}

// New creates a navigator over h.
func New(h host.Host, opts ...Option) *Navigator {
	n := &Navigator{
		host:   h,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Path returns the location without query string and hash, or the complete
// location when full is set. Native hosts return the program path and the
// whole invocation respectively.
func (n *Navigator) Path(full bool) string {
	return n.host.Path(full)
}

// Hash returns the text after '#', or "" when there is none.
func (n *Navigator) Hash() string {
	return n.host.Hash()
}

// SetHash replaces the hash fragment. No-op on hosts without one.
func (n *Navigator) SetHash(value string) {
	n.host.SetHash(value)
}

// Mutable reports whether the host keeps a query string and hash that
// SetHash and parameter changes can modify.
func (n *Navigator) Mutable() bool {
	return n.host.Kind().Mutable()
}

// OpenLink asks the host to open url, in a new tab or window when newContext
// is set. Browser hosts cannot observe popup blocking, so only handler
// failures on other hosts are returned, as a *LinkOpenError.
func (n *Navigator) OpenLink(url string, newContext bool) error {
	if err := n.host.OpenLink(url, newContext); err != nil {
		n.logger.Warn("Failed to open url",
			zap.String("url", url),
			zap.Bool("new_context", newContext),
			zap.Error(err),
		)
		if n.onFail != nil {
			n.onFail(url, err)
		}
		return &LinkOpenError{URL: url, Err: err}
	}
	return nil
}
