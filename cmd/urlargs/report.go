package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/GriffinCanCode/urlargs/internal/host"
	"github.com/GriffinCanCode/urlargs/internal/nav"
	"github.com/GriffinCanCode/urlargs/internal/params"
)

// Report is what the command prints about a location.
type Report struct {
	Host     host.Kind       `json:"host" yaml:"host"`
	Path     string          `json:"path" yaml:"path"`
	FullPath string          `json:"full_path" yaml:"full_path"`
	Hash     string          `json:"hash,omitempty" yaml:"hash,omitempty"`
	Tokens   []string        `json:"tokens" yaml:"tokens"`
	Parsed   []params.Parsed `json:"parsed" yaml:"parsed"`
	Opened   []string        `json:"opened,omitempty" yaml:"opened,omitempty"`
}

func buildReport(h host.Host, n *nav.Navigator) Report {
	args := params.Capture(h)
	r := Report{
		Host:     h.Kind(),
		Path:     n.Path(false),
		FullPath: n.Path(true),
		Hash:     n.Hash(),
		Tokens:   args.Tokens(),
		Parsed:   []params.Parsed{},
	}
	for _, tok := range args.Flags() {
		if p, ok := params.Parse(tok); ok {
			r.Parsed = append(r.Parsed, p)
		}
	}
	if m, ok := h.(*host.Memory); ok {
		r.Opened = m.Opened()
	}
	return r
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeReport(w io.Writer, r Report, format string, colored bool) error {
	switch format {
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	default:
		return writeText(w, r, colored)
	}
}

func writeText(w io.Writer, r Report, colored bool) error {
	label := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgGreen)
	value := color.New(color.FgYellow)
	for _, c := range []*color.Color{label, name, value} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", label.Sprint("host:"), r.Host)
	fmt.Fprintf(&sb, "%s %s\n", label.Sprint("path:"), r.Path)
	fmt.Fprintf(&sb, "%s %s\n", label.Sprint("full:"), r.FullPath)
	if r.Hash != "" {
		fmt.Fprintf(&sb, "%s %s\n", label.Sprint("hash:"), r.Hash)
	}
	fmt.Fprintln(&sb, label.Sprint("args:"))
	for i, tok := range r.Tokens {
		fmt.Fprintf(&sb, "  [%d] %s\n", i, tok)
	}
	if len(r.Parsed) > 0 {
		fmt.Fprintln(&sb, label.Sprint("flags:"))
		for _, p := range r.Parsed {
			if p.HasValue {
				fmt.Fprintf(&sb, "  %s = %s\n", name.Sprint(p.Name), value.Sprint(p.Value))
			} else {
				fmt.Fprintf(&sb, "  %s\n", name.Sprint(p.Name))
			}
		}
	}
	for _, u := range r.Opened {
		fmt.Fprintf(&sb, "%s %s\n", label.Sprint("opened:"), u)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
