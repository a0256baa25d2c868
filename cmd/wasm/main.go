//go:build js && wasm

// Command wasm exposes urlargs to JavaScript. Loaded with wasm_exec.js it
// installs a global "urlargs" object whose methods work on the page's
// location:
//
//	urlargs.params()            // ["/index.html", "-a", "--bb=1"]
//	urlargs.parse("--bb=1")     // {name: "bb", value: "1", hasValue: true}
//	urlargs.set("k", "v")
//	urlargs.delete("k")
//	urlargs.path(true)
//	urlargs.hash() / urlargs.setHash("top")
//	urlargs.open(url, newTab)   // null, or an error message
//	urlargs.version             // packed major<<24 | minor<<16 | patch
//	urlargs.compatible(packed)  // whether glue built for packed can use this build
package main

import (
	"fmt"
	"os"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/urlargs/internal/host"
	"github.com/GriffinCanCode/urlargs/internal/infrastructure/logging"
	"github.com/GriffinCanCode/urlargs/internal/nav"
	"github.com/GriffinCanCode/urlargs/internal/params"
	"github.com/GriffinCanCode/urlargs/internal/version"
)

func main() {
	logger := logging.FromLevel("warn", false)
	defer logger.Sync()

	h, err := host.New(host.Options{Kind: host.KindBrowser, Logger: logger.Logger})
	if err != nil {
		logger.Error("Failed to bind to the page", zap.Error(err))
		fmt.Fprintln(os.Stderr, "urlargs:", err)
		os.Exit(1)
	}

	tr := params.NewTranslator(h)
	navigator := nav.New(h, nav.WithLogger(logger.Logger))

	js.Global().Set("urlargs", exports(tr, navigator))
	logger.Debug("urlargs ready", zap.String("version", version.String()))

	select {}
}

func exports(tr *params.Translator, n *nav.Navigator) js.Value {
	api := map[string]any{
		"version": version.Packed(),
		"compatible": js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 || args[0].Type() != js.TypeNumber {
				return false
			}
			return version.Compatible(uint32(args[0].Int()))
		}),
		"params": js.FuncOf(func(this js.Value, args []js.Value) any {
			tokens := tr.List()
			out := make([]any, len(tokens))
			for i, tok := range tokens {
				out[i] = tok
			}
			return out
		}),
		"parse": js.FuncOf(func(this js.Value, args []js.Value) any {
			p, ok := params.Parse(stringArg(args, 0))
			if !ok {
				return nil
			}
			return map[string]any{
				"name":     p.Name,
				"value":    p.Value,
				"hasValue": p.HasValue,
			}
		}),
		"set": js.FuncOf(func(this js.Value, args []js.Value) any {
			tr.Set(stringArg(args, 0), stringArg(args, 1))
			return nil
		}),
		"delete": js.FuncOf(func(this js.Value, args []js.Value) any {
			tr.Delete(stringArg(args, 0))
			return nil
		}),
		"path": js.FuncOf(func(this js.Value, args []js.Value) any {
			return n.Path(boolArg(args, 0))
		}),
		"hash": js.FuncOf(func(this js.Value, args []js.Value) any {
			return n.Hash()
		}),
		"setHash": js.FuncOf(func(this js.Value, args []js.Value) any {
			n.SetHash(stringArg(args, 0))
			return nil
		}),
		"open": js.FuncOf(func(this js.Value, args []js.Value) any {
			if err := n.OpenLink(stringArg(args, 0), boolArg(args, 1)); err != nil {
				return err.Error()
			}
			return nil
		}),
	}
	return js.ValueOf(api)
}

func stringArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

func boolArg(args []js.Value, i int) bool {
	return i < len(args) && args[i].Truthy()
}
