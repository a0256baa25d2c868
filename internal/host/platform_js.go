//go:build js && wasm

package host

const platformKind = KindBrowser
