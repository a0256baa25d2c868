package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Param
	}{
		{name: "empty", raw: "", want: nil},
		{name: "only question mark", raw: "?", want: nil},
		{
			name: "flags and values",
			raw:  "?a&bb=1&c=spa%20ce",
			want: []Param{{"a", ""}, {"bb", "1"}, {"c", "spa ce"}},
		},
		{
			name: "plus is space",
			raw:  "cd=e+f",
			want: []Param{{"cd", "e f"}},
		},
		{
			name: "duplicates kept in order",
			raw:  "x=1&y=2&x=3",
			want: []Param{{"x", "1"}, {"y", "2"}, {"x", "3"}},
		},
		{
			name: "value keeps later equals signs",
			raw:  "k=a=b",
			want: []Param{{"k", "a=b"}},
		},
		{
			name: "empty segments skipped",
			raw:  "&&a=1&&",
			want: []Param{{"a", "1"}},
		},
		{
			name: "empty key",
			raw:  "=v",
			want: []Param{{"", "v"}},
		},
		{
			name: "unicode",
			raw:  "%D0%BA=%E2%9C%93",
			want: []Param{{"к", "✓"}},
		},
		{
			name: "malformed escape kept",
			raw:  "a=100%&b=%zz",
			want: []Param{{"a", "100%"}, {"b", "%zz"}},
		},
		{
			name: "invalid byte replaced",
			raw:  "%FF",
			want: []Param{{"\ufffd", ""}},
		},
		{
			name: "truncated sequence is one replacement",
			raw:  "%E2%9C=1",
			want: []Param{{"\ufffd", "1"}},
		},
		{
			name: "each invalid byte replaced",
			raw:  "k=%FF%FE",
			want: []Param{{"k", "\ufffd\ufffd"}},
		},
		{
			name: "truncated sequence before ascii",
			raw:  "k=%C3%28x",
			want: []Param{{"k", "\ufffd(x"}},
		},
		{
			name: "surrogate encoding rejected",
			raw:  "k=%ED%A0%80",
			want: []Param{{"k", "\ufffd\ufffd\ufffd"}},
		},
		{
			name: "literal replacement char kept",
			raw:  "k=%EF%BF%BD",
			want: []Param{{"k", "\ufffd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseQuery(tt.raw))
		})
	}
}

func TestEncodeQueryRoundTrip(t *testing.T) {
	params := []Param{{"a", ""}, {"bb", "1"}, {"c", "spa ce"}, {"ключ", "a&b=c"}}

	encoded := encodeQuery(params)

	assert.Equal(t, "a=&bb=1&c=spa+ce&%D0%BA%D0%BB%D1%8E%D1%87=a%26b%3Dc", encoded)
	assert.Equal(t, params, parseQuery(encoded))
}

func TestSetParam(t *testing.T) {
	t.Run("appends when absent", func(t *testing.T) {
		got := setParam([]Param{{"a", "1"}}, "b", "2")
		assert.Equal(t, []Param{{"a", "1"}, {"b", "2"}}, got)
	})

	t.Run("overwrites first and drops duplicates", func(t *testing.T) {
		got := setParam([]Param{{"x", "1"}, {"y", "2"}, {"x", "3"}}, "x", "9")
		assert.Equal(t, []Param{{"x", "9"}, {"y", "2"}}, got)
	})

	t.Run("does not alias input", func(t *testing.T) {
		in := []Param{{"a", "1"}}
		_ = setParam(in, "a", "2")
		assert.Equal(t, "1", in[0].Value)
	})
}

func TestDeleteParam(t *testing.T) {
	got := deleteParam([]Param{{"x", "1"}, {"y", "2"}, {"x", "3"}}, "x")
	assert.Equal(t, []Param{{"y", "2"}}, got)

	assert.Empty(t, deleteParam(nil, "x"))
}
