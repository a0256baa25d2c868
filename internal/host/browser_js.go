//go:build js && wasm

package host

import (
	"strings"
	"syscall/js"

	"go.uber.org/zap"
)

// Browser is the host for code running in a page. It reads window.location
// on every call and rewrites the query string with history.replaceState, so
// parameter changes never reload the page.
type Browser struct {
	window js.Value
	logger *zap.Logger
}

// NewBrowser binds to the global window object.
func NewBrowser(logger *zap.Logger) (Host, error) {
	window := js.Global().Get("window")
	if window.IsUndefined() || window.IsNull() {
		return nil, ErrUnavailable
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Browser{window: window, logger: logger}, nil
}

func (b *Browser) Kind() Kind {
	return KindBrowser
}

func (b *Browser) location() js.Value {
	return b.window.Get("location")
}

func (b *Browser) Path(full bool) string {
	loc := b.location()
	if full {
		return loc.Get("href").String()
	}
	return loc.Get("origin").String() + loc.Get("pathname").String()
}

func (b *Browser) Params() []Param {
	search := js.Global().Get("URLSearchParams").New(b.location().Get("search"))
	entries := js.Global().Get("Array").Call("from", search.Call("entries"))

	n := entries.Length()
	params := make([]Param, 0, n)
	for i := 0; i < n; i++ {
		e := entries.Index(i)
		params = append(params, Param{
			Key:   e.Index(0).String(),
			Value: e.Index(1).String(),
		})
	}
	return params
}

func (b *Browser) SetParam(name, value string) {
	b.rewriteSearch(func(sp js.Value) {
		sp.Call("set", name, value)
	})
}

func (b *Browser) DeleteParam(name string) {
	b.rewriteSearch(func(sp js.Value) {
		sp.Call("delete", name)
	})
}

func (b *Browser) rewriteSearch(edit func(searchParams js.Value)) {
	u := js.Global().Get("URL").New(b.location().Get("href"))
	edit(u.Get("searchParams"))

	history := b.window.Get("history")
	history.Call("replaceState", history.Get("state"), "", u.Call("toString"))
}

func (b *Browser) Hash() string {
	return strings.TrimPrefix(b.location().Get("hash").String(), "#")
}

func (b *Browser) SetHash(value string) {
	b.location().Set("hash", value)
}

// OpenLink never fails: popup blockers give no synchronous feedback.
func (b *Browser) OpenLink(url string, newContext bool) error {
	if newContext {
		if w := b.window.Call("open", url, "_blank"); w.IsNull() {
			b.logger.Debug("New window was not returned, popup may be blocked", zap.String("url", url))
		}
		return nil
	}
	b.location().Set("href", url)
	return nil
}
