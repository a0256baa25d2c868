package host

import (
	"strings"

	"go.uber.org/zap"
)

// Native is the host for a regular process. The invocation stands in for the
// location, there are no query parameters and no hash, and links are handed
// to the platform URL handler.
type Native struct {
	args   []string
	opener Opener
	logger *zap.Logger
}

// NewNative creates a native host for the given invocation.
func NewNative(args []string, opener Opener, logger *zap.Logger) *Native {
	if opener == nil {
		opener = BrowserOpener{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Native{
		args:   append([]string(nil), args...),
		opener: opener,
		logger: logger,
	}
}

func (n *Native) Kind() Kind {
	return KindNative
}

// Path returns the program path, or the whole invocation joined by single
// spaces when full is set.
func (n *Native) Path(full bool) string {
	if full {
		return strings.Join(n.args, " ")
	}
	if len(n.args) == 0 {
		return ""
	}
	return n.args[0]
}

// Args returns the invocation verbatim. It already is an argument vector,
// so translators use it instead of Params.
func (n *Native) Args() []string {
	return append([]string(nil), n.args...)
}

func (n *Native) Params() []Param {
	return nil
}

func (n *Native) SetParam(name, value string) {
	n.unsupported("set_param", name)
}

func (n *Native) DeleteParam(name string) {
	n.unsupported("delete_param", name)
}

func (n *Native) Hash() string {
	return ""
}

func (n *Native) SetHash(value string) {
	n.unsupported("set_hash", value)
}

// OpenLink runs the platform handler. newContext is left to the handler.
func (n *Native) OpenLink(url string, newContext bool) error {
	return n.opener.Open(url)
}

func (n *Native) unsupported(op, arg string) {
	n.logger.Debug("Operation unsupported on native host",
		zap.String("op", op),
		zap.String("arg", arg),
	)
}
