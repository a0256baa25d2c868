package host

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/browser"
)

// Opener hands a URL to something that can display it.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// BrowserOpener uses the platform's default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// CommandOpener runs Name with Args followed by the URL.
type CommandOpener struct {
	Name string
	Args []string
}

// NewCommandOpener splits a command line such as "firefox --new-window" into
// a CommandOpener.
func NewCommandOpener(command string) CommandOpener {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return CommandOpener{}
	}
	return CommandOpener{Name: fields[0], Args: fields[1:]}
}

func (c CommandOpener) Open(url string) error {
	if c.Name == "" {
		return fmt.Errorf("no open command configured")
	}

	args := append(append([]string(nil), c.Args...), url)
	out, err := exec.Command(c.Name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}
