// Package host provides the exchange layer between urlargs and the environment
// it runs in.
//
// A Host exposes the current location, the ordered query parameters, the hash
// fragment and link opening as plain string operations. Three implementations
// exist:
//   - Browser: window.location and history via syscall/js (js/wasm only)
//   - Native: the process argument list; no query string and no hash
//   - Memory: an in-process URL, used by the HTTP service sessions and tests
//
// Hosts without a mutable query string or hash treat mutations as no-ops.
// Only OpenLink can fail, and only on hosts that spawn a platform handler.
//
// Example Usage:
//
//	h, err := host.New(host.Options{Kind: host.KindAuto})
//	for _, p := range h.Params() {
//	    fmt.Println(p.Key, p.Value)
//	}
package host
