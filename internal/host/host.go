package host

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Kind identifies a host implementation.
type Kind string

const (
	KindAuto    Kind = "auto"
	KindBrowser Kind = "browser"
	KindNative  Kind = "native"
	KindMemory  Kind = "memory"
)

// Mutable reports whether hosts of this kind own a query string and hash that
// can be changed.
func (k Kind) Mutable() bool {
	return k == KindBrowser || k == KindMemory
}

// ErrUnavailable is returned when a host kind cannot run on this platform.
var ErrUnavailable = errors.New("host unavailable on this platform")

// Param is a raw query parameter as decoded by the host. An empty Value means
// the key was present without a value.
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Host is the capability set urlargs needs from its environment.
type Host interface {
	// Kind reports which implementation backs the host.
	Kind() Kind
	// Path returns the location without query and hash, or the full location.
	Path(full bool) string
	// Params returns the query parameters in URL order.
	Params() []Param
	// SetParam creates or overwrites name.
	SetParam(name, value string)
	// DeleteParam removes every occurrence of name.
	DeleteParam(name string)
	// Hash returns the text after '#'.
	Hash() string
	// SetHash replaces the hash fragment.
	SetHash(value string)
	// OpenLink navigates to url, in a new tab or window when newContext is set.
	OpenLink(url string, newContext bool) error
}

// ArgumentSource is implemented by hosts whose location already is an
// argument vector.
type ArgumentSource interface {
	Args() []string
}

// Options selects and configures a host.
type Options struct {
	Kind Kind
	// URL seeds a memory host.
	URL string
	// Args replaces os.Args for a native host.
	Args []string
	// OpenCommand replaces the platform URL handler of a native host.
	OpenCommand string
	Logger      *zap.Logger
}

// New builds the host described by opts. KindAuto picks the browser host on
// js/wasm and the native host elsewhere.
func New(opts Options) (Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	kind := opts.Kind
	if kind == "" || kind == KindAuto {
		kind = platformKind
	}

	switch kind {
	case KindBrowser:
		h, err := NewBrowser(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create browser host: %w", err)
		}
		return h, nil
	case KindNative:
		args := opts.Args
		if args == nil {
			args = os.Args
		}
		var opener Opener = BrowserOpener{}
		if opts.OpenCommand != "" {
			opener = NewCommandOpener(opts.OpenCommand)
		}
		return NewNative(args, opener, logger), nil
	case KindMemory:
		h, err := NewMemory(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory host: %w", err)
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown host kind: %s", kind)
	}
}

// ParseKind converts a configuration string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindAuto:
		return KindAuto, nil
	case KindBrowser, KindNative, KindMemory:
		return k, nil
	default:
		return "", fmt.Errorf("invalid host kind %q: must be auto, browser, native or memory", s)
	}
}
