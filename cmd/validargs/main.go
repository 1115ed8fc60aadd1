package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/reoring/validargs"
	"github.com/reoring/validargs/i18n"
	"github.com/reoring/validargs/manifest"
	"github.com/reoring/validargs/validators"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "validargs CLI\n\nUsage:\n  validargs bind -sig sig.yaml [-args '[1,2]'] [-named '{\"k\":\"v\"}'] [-lang en|ja] [-v]\n  validargs validators\n\nNotes:\n  - bind resolves and validates the arguments against the manifest and prints them as JSON.\n  - Exit status is 1 for binding or validation failures and 2 for usage errors.")
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "bind":
		return bindCmd(args[1:], stdout, stderr)
	case "validators":
		for _, n := range validators.Default().Names() {
			fmt.Fprintln(stdout, n)
		}
		return 0
	default:
		usage(stderr)
		return 2
	}
}

func bindCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var sigPath, posJSON, namedJSON, lang string
	var verbose bool
	fs.StringVar(&sigPath, "sig", "", "signature manifest (.json, .yaml or .yml)")
	fs.StringVar(&posJSON, "args", "", "positional arguments as a JSON array")
	fs.StringVar(&namedJSON, "named", "", "named arguments as a JSON object")
	fs.StringVar(&lang, "lang", "en", "message language (en or ja)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if sigPath == "" {
		fs.Usage()
		return 2
	}
	i18n.SetLanguage(lang)

	logger := slog.New(slog.DiscardHandler)
	if verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	doc, err := manifest.Load(sigPath, validators.Default())
	if err != nil {
		fmt.Fprintf(stderr, "loading manifest: %v\n", err)
		return 2
	}
	logger.Debug("manifest loaded", slog.String("path", sigPath), slog.String("func", doc.Name), slog.Int("params", len(doc.Params)))

	callArgs, err := manifest.ArgsFromJSON([]byte(posJSON), []byte(namedJSON))
	if err != nil {
		fmt.Fprintf(stderr, "decoding arguments: %v\n", err)
		return 2
	}

	// The target is never invoked by bind; Func.Bind stops after validation.
	noop := validargs.CallableFunc(func(context.Context, []any, map[string]any) (any, error) { return nil, nil })
	f, err := doc.Wrap(noop, validargs.WrapOpt{Logger: logger})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	r, err := f.Bind(context.Background(), callArgs)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", errorKind(err), err)
		return 1
	}
	out, err := manifest.MarshalResolved(r)
	if err != nil {
		fmt.Fprintf(stderr, "encoding result: %v\n", err)
		return 2
	}
	fmt.Fprintln(stdout, strings.TrimSpace(string(out)))
	return 0
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, validargs.ErrBinding):
		return "binding error"
	case errors.Is(err, validargs.ErrValidation):
		return "validation error"
	}
	return "error"
}
