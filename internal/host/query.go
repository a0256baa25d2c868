package host

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// parseQuery splits a raw query string into ordered parameters the way a
// browser's URLSearchParams does: '&' separated, first '=' splits key from
// value, '+' is a space, and malformed percent escapes are kept as written.
// Decoded bytes that are not valid UTF-8 become U+FFFD, one per maximal
// invalid subpart.
func parseQuery(raw string) []Param {
	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil
	}

	var params []Param
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		params = append(params, Param{
			Key:   decodeComponent(key),
			Value: decodeComponent(value),
		})
	}
	return params
}

// encodeQuery serializes params in order. Every entry is written as key=value,
// so a valueless key comes back as "key=".
func encodeQuery(params []Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// setParam overwrites the first entry named name and drops later duplicates,
// or appends a new entry when name is absent.
func setParam(params []Param, name, value string) []Param {
	out := params[:0:0]
	found := false
	for _, p := range params {
		if p.Key != name {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, Param{Key: name, Value: value})
			found = true
		}
	}
	if !found {
		out = append(out, Param{Key: name, Value: value})
	}
	return out
}

// deleteParam removes every entry named name.
func deleteParam(params []Param, name string) []Param {
	out := params[:0:0]
	for _, p := range params {
		if p.Key != name {
			out = append(out, p)
		}
	}
	return out
}

func decodeComponent(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return wellFormed(s)
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			sb.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			sb.WriteByte(c)
		}
	}
	return wellFormed(sb.String())
}

// wellFormed replaces ill-formed UTF-8 with U+FFFD the way the WHATWG
// decoder does: "\xe2\x9c" is one replacement, "\xff\xff" is two.
func wellFormed(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || size > 1 {
			sb.WriteString(s[i : i+size])
			i += size
			continue
		}
		sb.WriteRune(utf8.RuneError)
		i += invalidPrefixLen(s[i:])
	}
	return sb.String()
}

// invalidPrefixLen returns the length of the maximal subpart of a UTF-8
// sequence at the start of s, or 1 when the lead byte cannot start one.
func invalidPrefixLen(s string) int {
	lo, hi := byte(0x80), byte(0xbf)
	var need int
	switch b := s[0]; {
	case b >= 0xc2 && b <= 0xdf:
		need = 1
	case b == 0xe0:
		need, lo = 2, 0xa0
	case b == 0xed:
		need, hi = 2, 0x9f
	case b >= 0xe1 && b <= 0xef:
		need = 2
	case b == 0xf0:
		need, lo = 3, 0x90
	case b == 0xf4:
		need, hi = 3, 0x8f
	case b >= 0xf1 && b <= 0xf3:
		need = 3
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(s); n++ {
		if s[n] < lo || s[n] > hi {
			break
		}
		lo, hi = 0x80, 0xbf
	}
	return n
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
