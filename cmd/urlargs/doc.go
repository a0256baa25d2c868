// Package main is the urlargs command: it shows a location as an argument
// vector and exercises the navigation operations from a terminal.
//
// The location is the URL given with -url (an in-memory host), or the
// arguments after the flags, or this process's own invocation.
//
// Usage:
//
//	urlargs -url 'http://example.com/index.html?a&bb=1&c=spa%20ce'
//	urlargs -url http://example.com/ -set k=v -delete old -hash top -format yaml
//	urlargs -format json -- prog -k=1 --begin
//	urlargs -open https://example.com -new-tab
//
// Exit codes: 0 on success, 1 when a link cannot be opened or the host
// cannot be created, 2 on usage errors.
package main
