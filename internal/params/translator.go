package params

import "github.com/GriffinCanCode/urlargs/internal/host"

// Translator maps between a host's query parameters and argument tokens. It
// keeps no state: every call goes to the host.
type Translator struct {
	host host.Host
}

// NewTranslator creates a translator over h.
func NewTranslator(h host.Host) *Translator {
	return &Translator{host: h}
}

// List returns the location path followed by one token per query parameter,
// in URL order. Duplicate keys produce one token each. Hosts that already hold
// an argument vector, such as a native process, return it unchanged.
func (t *Translator) List() []string {
	if src, ok := t.host.(host.ArgumentSource); ok {
		return src.Args()
	}
	raw := t.host.Params()
	tokens := make([]string, 0, len(raw)+1)
	tokens = append(tokens, t.host.Path(false))
	for _, p := range raw {
		tokens = append(tokens, Format(p.Key, p.Value))
	}
	return tokens
}

// Set creates or overwrites the query parameter name. Hosts without a
// mutable query string ignore it.
func (t *Translator) Set(name, value string) {
	t.host.SetParam(name, value)
}

// Delete removes every query parameter called name. Hosts without a mutable
// query string ignore it.
func (t *Translator) Delete(name string) {
	t.host.DeleteParam(name)
}
