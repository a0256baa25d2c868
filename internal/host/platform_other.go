//go:build !(js && wasm)

package host

import "go.uber.org/zap"

const platformKind = KindNative

// NewBrowser is only available on js/wasm.
func NewBrowser(logger *zap.Logger) (Host, error) {
	return nil, ErrUnavailable
}
