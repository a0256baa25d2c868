package params

import "github.com/GriffinCanCode/urlargs/internal/host"

// Args is an argument vector captured once and owned by the caller. Pass it
// to whatever needs the parameters instead of re-reading the host.
type Args struct {
	tokens []string
}

// Capture reads the host once and returns the resulting vector.
func Capture(h host.Host) Args {
	return Args{tokens: NewTranslator(h).List()}
}

// FromTokens wraps an existing vector, such as os.Args.
func FromTokens(tokens []string) Args {
	return Args{tokens: append([]string(nil), tokens...)}
}

// Path returns element 0, or "" for an empty vector.
func (a Args) Path() string {
	if len(a.tokens) == 0 {
		return ""
	}
	return a.tokens[0]
}

// Tokens returns a copy of the whole vector, path included.
func (a Args) Tokens() []string {
	return append([]string(nil), a.tokens...)
}

// Flags returns the vector without the path, ready for flag.FlagSet.Parse.
func (a Args) Flags() []string {
	if len(a.tokens) < 2 {
		return nil
	}
	return append([]string(nil), a.tokens[1:]...)
}

// Lookup returns the last parameter called name, matching the way repeated
// command-line flags override earlier ones.
func (a Args) Lookup(name string) (Parsed, bool) {
	for i := len(a.tokens) - 1; i >= 1; i-- {
		if p, ok := Parse(a.tokens[i]); ok && p.Name == name {
			return p, true
		}
	}
	return Parsed{}, false
}
