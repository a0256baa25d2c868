package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativePath(t *testing.T) {
	n := NewNative([]string{"/usr/bin/prog", "-k=1", "--begin"}, nil, nil)

	assert.Equal(t, KindNative, n.Kind())
	assert.Equal(t, "/usr/bin/prog", n.Path(false))
	assert.Equal(t, "/usr/bin/prog -k=1 --begin", n.Path(true))
}

func TestNativeEmptyArgs(t *testing.T) {
	n := NewNative(nil, nil, nil)

	assert.Equal(t, "", n.Path(false))
	assert.Equal(t, "", n.Path(true))
}

func TestNativeMutationsAreNoOps(t *testing.T) {
	n := NewNative([]string{"prog"}, nil, nil)

	n.SetParam("a", "1")
	n.DeleteParam("a")
	n.SetHash("h")

	assert.Empty(t, n.Params())
	assert.Equal(t, "", n.Hash())
	assert.Equal(t, "prog", n.Path(true))
}

func TestNativeOpenLink(t *testing.T) {
	var got string
	n := NewNative([]string{"prog"}, OpenerFunc(func(url string) error {
		got = url
		return nil
	}), nil)

	require.NoError(t, n.OpenLink("https://example.com", true))
	assert.Equal(t, "https://example.com", got)

	boom := errors.New("boom")
	n = NewNative([]string{"prog"}, OpenerFunc(func(string) error { return boom }), nil)
	assert.ErrorIs(t, n.OpenLink("https://example.com", false), boom)
}

func TestCommandOpener(t *testing.T) {
	t.Run("missing command", func(t *testing.T) {
		err := NewCommandOpener("urlargs-no-such-handler --flag").Open("https://example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "urlargs-no-such-handler")
	})

	t.Run("empty command", func(t *testing.T) {
		assert.Error(t, NewCommandOpener("  ").Open("https://example.com"))
	})

	t.Run("split", func(t *testing.T) {
		c := NewCommandOpener("firefox --new-window")
		assert.Equal(t, "firefox", c.Name)
		assert.Equal(t, []string{"--new-window"}, c.Args)
	})
}

func TestNativeArgs(t *testing.T) {
	in := []string{"/usr/bin/prog", "-k=1", "--begin"}
	n := NewNative(in, nil, nil)

	got := n.Args()
	assert.Equal(t, in, got)

	got[0] = "changed"
	assert.Equal(t, "/usr/bin/prog", n.Args()[0])

	var _ ArgumentSource = n
}
