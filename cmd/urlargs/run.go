package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/host"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/config"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/logging"
	"github.com/GriffinCanCode/urlargs/internal/nav"
	"github.com/GriffinCanCode/urlargs/internal/params"
	"github.com/GriffinCanCode/urlargs/internal/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	kind        string
	url         string
	openCommand string
	format      string
	color       string
	sets        listFlag
	deletes     listFlag
	hash        string
	hashSet     bool
	open        string
	newTab      bool
	verbose     bool
	version     bool
	invocation  []string
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	cfg := config.LoadOrDefault()

	opts := &options{}
	fs := flag.NewFlagSet("urlargs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.kind, "host", cfg.Host.Kind, "Host kind: auto, native or memory")
	fs.StringVar(&opts.url, "url", cfg.Host.URL, "Location for an in-memory host (implies -host memory)")
	fs.StringVar(&opts.openCommand, "open-command", cfg.Host.OpenCommand, "Command used to open links instead of the default browser")
	fs.StringVar(&opts.format, "format", "text", "Output format: text, json or yaml")
	fs.StringVar(&opts.color, "color", "auto", "Colorize text output: auto, always or never")
	fs.Var(&opts.sets, "set", "Set a query parameter, as key=value (repeatable)")
	fs.Var(&opts.deletes, "delete", "Delete a query parameter (repeatable)")
	fs.StringVar(&opts.hash, "hash", "", "Replace the hash fragment")
	fs.StringVar(&opts.open, "open", "", "Open a link")
	fs.BoolVar(&opts.newTab, "new-tab", false, "Open the link in a new tab or window")
	fs.BoolVar(&opts.verbose, "v", false, "Debug logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "hash" {
			opts.hashSet = true
		}
	})
	opts.invocation = fs.Args()

	switch opts.format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid -format %q: must be text, json or yaml", opts.format)
	}
	switch opts.color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid -color %q: must be auto, always or never", opts.color)
	}
	return opts, nil
}

func (o *options) hostOptions(logger *zap.Logger) (host.Options, error) {
	kind, err := host.ParseKind(o.kind)
	if err != nil {
		return host.Options{}, err
	}
	if o.url != "" && kind == host.KindAuto {
		kind = host.KindMemory
	}

	hopts := host.Options{
		Kind:        kind,
		URL:         o.url,
		OpenCommand: o.openCommand,
		Logger:      logger,
	}
	if len(o.invocation) > 0 {
		hopts.Args = o.invocation
	}
	return hopts, nil
}

func run(args []string, stdout, stderr io.Writer, logger *zap.Logger) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "urlargs:", err)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	if logger == nil {
		level := "warn"
		if opts.verbose {
			level = "debug"
		}
		l := logging.FromLevel(level, true)
		defer func() { _ = l.Sync() }()
		logger = l.Logger
	}

	hopts, err := opts.hostOptions(logger)
	if err != nil {
		fmt.Fprintln(stderr, "urlargs:", err)
		return exitUsage
	}
	h, err := host.New(hopts)
	if err != nil {
		fmt.Fprintln(stderr, "urlargs:", err)
		return exitError
	}

	tr := params.NewTranslator(h)
	navigator := nav.New(h, nav.WithLogger(logger))

	if (len(opts.sets) > 0 || len(opts.deletes) > 0 || opts.hashSet) && !navigator.Mutable() {
		logger.Warn("Host location is read-only, ignoring changes", zap.String("host", string(h.Kind())))
	}
	for _, kv := range opts.sets {
		key, value, _ := strings.Cut(kv, "=")
		tr.Set(key, value)
	}
	for _, key := range opts.deletes {
		tr.Delete(key)
	}
	if opts.hashSet {
		navigator.SetHash(opts.hash)
	}

	code := exitOK
	if opts.open != "" {
		if err := navigator.OpenLink(opts.open, opts.newTab); err != nil {
			fmt.Fprintln(stderr, "urlargs:", err)
			code = exitError
		}
	}

	r := buildReport(h, navigator)
	if err := writeReport(stdout, r, opts.format, useColor(opts.color, stdout)); err != nil {
		fmt.Fprintln(stderr, "urlargs:", err)
		return exitError
	}
	return code
}
