package params

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNotAParameter describes a token that does not start with a dash.
var ErrNotAParameter = errors.New("not a parameter")

// Parsed is a token split into its name and optional value.
type Parsed struct {
	Name     string `json:"name" yaml:"name"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	HasValue bool   `json:"has_value" yaml:"has_value"`
}

// Format renders a query parameter as an argument token. Keys of exactly one
// Unicode scalar value get a single dash, all others two.
func Format(key, value string) string {
	dash := "--"
	if utf8.RuneCountInString(key) == 1 {
		dash = "-"
	}
	if value == "" {
		return dash + key
	}
	return dash + key + "=" + value
}

// Parse splits a token such as "--name=value" or "-n". It reports false when
// the token has no leading dash. The dash count is not checked against the
// name length, and a trailing bare '=' yields no value.
func Parse(token string) (Parsed, bool) {
	var rest string
	switch {
	case strings.HasPrefix(token, "--"):
		rest = token[2:]
	case strings.HasPrefix(token, "-"):
		rest = token[1:]
	default:
		return Parsed{}, false
	}

	name, value, found := strings.Cut(rest, "=")
	if !found || value == "" {
		return Parsed{Name: name}, true
	}
	return Parsed{Name: name, Value: value, HasValue: true}, true
}
